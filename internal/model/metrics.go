package model

// DomainMetrics records business events.
type DomainMetrics interface {
	ObserveLogin(success bool)
	MessageCreated()
	MessageRead()
}
