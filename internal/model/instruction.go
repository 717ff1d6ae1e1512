package model

// InstructionKind identifies which keyword grammar an instruction uses.
type InstructionKind string

const (
	KindDebit  InstructionKind = "DEBIT"
	KindCredit InstructionKind = "CREDIT"
)

// ParsedInstruction is the structured form of an instruction string.
// Produced once per request and immutable thereafter.
//
// AmountText is the raw amount token; it is not validated here because
// amount failures must still echo the other parsed fields. Currency is
// upper-cased at parse time. Account IDs keep their original casing.
// ExecuteBy is empty when the instruction has no ON clause.
type ParsedInstruction struct {
	Kind          InstructionKind
	AmountText    string
	Currency      string
	DebitAccount  string
	CreditAccount string
	ExecuteBy     string
}
