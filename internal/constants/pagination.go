package constants

// DefaultPageLimit - размер страницы по умолчанию для пагинируемых списков.
const DefaultPageLimit = 20
