package entity

// ActorID is the shared identity key of the marketplace. A user, their
// settings document and their seller profile are three views of one actor
// and are all stored under the same ActorID value.
type ActorID string

func (id ActorID) String() string {
	return string(id)
}

func (id ActorID) IsZero() bool {
	return id == ""
}
