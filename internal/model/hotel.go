package model

// Hotel is a read-only document seeded outside this service. Its fields are
// passed through to clients untouched.
type Hotel map[string]any
