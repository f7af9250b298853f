package circuit

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// gateArity maps every accepted gate name (upper case) to its operand count.
var gateArity = map[string]int{
	"H": 1, "X": 1, "Y": 1, "Z": 1, "S": 1, "T": 1, "SDG": 1, "TDG": 1, "I": 1,
	"CNOT": 2, "CX": 2, "CZ": 2, "SWAP": 2,
}

// gateAlias normalizes spellings that denote the same gate.
var gateAlias = map[string]string{"CX": "CNOT"}

// Parse reads a circuit, one instruction per line. Blank lines and comments
// (# or //) are skipped; a trailing ';' is ignored.
func Parse(r io.Reader) ([]Operation, error) {
	var ops []Operation
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		op, ok, err := parseLine(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("Parse: line %d: %w", line, err)
		}
		if ok {
			ops = append(ops, op)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}
	return ops, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) ([]Operation, error) {
	return Parse(strings.NewReader(s))
}

// parseLine returns ok=false for lines with no instruction.
func parseLine(raw string) (Operation, bool, error) {
	text := raw
	if i := strings.Index(text, "//"); i >= 0 {
		text = text[:i]
	}
	if i := strings.IndexByte(text, '#'); i >= 0 {
		text = text[:i]
	}
	text = strings.TrimSpace(text)
	text = strings.TrimSpace(strings.TrimSuffix(text, ";"))
	if text == "" {
		return Operation{}, false, nil
	}

	name, rest := text, ""
	if i := strings.IndexAny(text, " \t"); i >= 0 {
		name, rest = text[:i], text[i+1:]
	}
	gate := strings.ToUpper(name)
	arity, known := gateArity[gate]
	if !known {
		return Operation{}, false, fmt.Errorf("%q: %w", name, ErrUnknownGate)
	}
	if alias, ok := gateAlias[gate]; ok {
		gate = alias
	}

	var qubits []Qubit
	rest = strings.TrimSpace(rest)
	if rest != "" {
		for _, tok := range strings.Split(rest, ",") {
			q, err := parseQubit(strings.TrimSpace(tok))
			if err != nil {
				return Operation{}, false, err
			}
			qubits = append(qubits, q)
		}
	}
	if len(qubits) != arity {
		return Operation{}, false, fmt.Errorf("%s takes %d qubit(s), got %d: %w", gate, arity, len(qubits), ErrArity)
	}

	if arity == 1 {
		return NewSingle(gate, qubits[0]), true, nil
	}
	op, err := NewTwo(gate, qubits[0], qubits[1])
	if err != nil {
		return Operation{}, false, err
	}
	return op, true, nil
}

// parseQubit accepts "q3" and "q[3]".
func parseQubit(tok string) (Qubit, error) {
	lower := strings.ToLower(tok)
	if !strings.HasPrefix(lower, "q") {
		return 0, fmt.Errorf("qubit %q: %w", tok, ErrSyntax)
	}
	digits := lower[1:]
	if strings.HasPrefix(digits, "[") {
		if !strings.HasSuffix(digits, "]") {
			return 0, fmt.Errorf("qubit %q: %w", tok, ErrSyntax)
		}
		digits = strings.TrimSpace(digits[1 : len(digits)-1])
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 || digits == "" || digits[0] == '+' || digits[0] == '-' {
		return 0, fmt.Errorf("qubit %q: %w", tok, ErrSyntax)
	}
	return Qubit(n), nil
}
