package model

// Account is one row of the caller-supplied balance snapshot.
// Balances are integer base units. The snapshot is read-only: the
// evaluator reports what balances would become, it never commits them.
type Account struct {
	ID       string
	Balance  int64
	Currency string
}
