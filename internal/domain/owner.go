package domain

// Owner identifies the landlord on whose behalf an operation runs. Every store
// read and write is scoped to Owner.ID.
type Owner struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}

func (o Owner) Valid() bool { return o.ID != "" }
