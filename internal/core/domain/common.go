package domain

// Ownable is implemented by entities whose mutating operations are restricted
// to their recorded creator (administrators excepted).
type Ownable interface {
	GetID() string
	GetCreatedBy() string
}
