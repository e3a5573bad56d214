package constants

// MaxFilterValueLen - максимальная длина строкового критерия фильтра.
// Более длинные значения молча обрезаются перед отправкой запроса.
const MaxFilterValueLen = 100

// DefaultNearbyRadiusKm - радиус поиска пунктов приема по умолчанию.
const DefaultNearbyRadiusKm = 10.0

// EarthRadiusKm - радиус Земли для формулы гаверсинусов.
const EarthRadiusKm = 6371.0
