package stackvm

import "sort"

// Operation is one instruction a dispatcher can invoke by name.
type Operation func(*Machine) error

// Instruction names, one per emitted instruction.
var operations = map[string]Operation{
	"drop":       (*Machine).Drop,
	"dup":        (*Machine).Dup,
	"over":       (*Machine).Over,
	"swap":       (*Machine).Swap,
	"rot":        (*Machine).Rot,
	"plus":       (*Machine).Plus,
	"minus":      (*Machine).Minus,
	"times":      (*Machine).Times,
	"divide":     (*Machine).Divide,
	"modulo":     (*Machine).Modulo,
	"pow":        (*Machine).Pow,
	"greater":    (*Machine).Greater,
	"less":       (*Machine).Less,
	"equals":     (*Machine).Equals,
	"and":        (*Machine).And,
	"or":         (*Machine).Or,
	"not":        (*Machine).Not,
	"increment":  (*Machine).Increment,
	"decrement":  (*Machine).Decrement,
	"join":       (*Machine).Join,
	"substring":  (*Machine).Substring,
	"length":     (*Machine).Length,
	"to_char":    (*Machine).ToChar,
	"from_char":  (*Machine).FromChar,
	"index":      (*Machine).Index,
	"readline":   (*Machine).Readline,
	"print":      (*Machine).Print,
	"assert":     (*Machine).Assert,
	"printStack": (*Machine).PrintStack,
}

// Source-level symbols that alias an instruction name.
var symbols = map[string]string{
	"+":  "plus",
	"-":  "minus",
	"*":  "times",
	"/":  "divide",
	"%":  "modulo",
	"**": "pow",
	">":  "greater",
	"<":  "less",
	"==": "equals",
	"&&": "and",
	"||": "or",
	"!":  "not",
	"++": "increment",
	"--": "decrement",
}

// Lookup resolves an instruction name or symbol to its operation
func Lookup(name string) (Operation, bool) {
	if alias, ok := symbols[name]; ok {
		name = alias
	}
	op, ok := operations[name]
	return op, ok
}

// Names returns every instruction name and symbol, sorted
func Names() []string {
	names := make([]string, 0, len(operations)+len(symbols))
	for name := range operations {
		names = append(names, name)
	}
	for sym := range symbols {
		names = append(names, sym)
	}
	sort.Strings(names)
	return names
}
