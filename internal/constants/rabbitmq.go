package constants

// Имя обменника для событий маркетплейса
const (
	ExchangePieceEvents = "piece_events_exchange"
)

// Ключи маршрутизации
const (
	RoutingKeyPieceCreated       = "pieces.lifecycle.created"
	RoutingKeyPieceStatusChanged = "pieces.lifecycle.status_changed"
)
