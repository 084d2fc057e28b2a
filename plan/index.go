package plan

// CreateIndex is a non-data DDL operator: on first pull it requests
// storage to build an index on (Label, Property); an already-existing
// index is silently ignored (spec §4.16).
type CreateIndex struct {
	Label    string
	Property string
}

func (*CreateIndex) isOperator() {}
