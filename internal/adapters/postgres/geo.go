package postgres

import (
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
	"github.com/mmcloughlin/geohash"
)

// geohashPrecision: 9 символов, ячейка около 5x5 м
const geohashPrecision = 9

// computeGeohash возвращает пустую строку, если координат нет
func computeGeohash(p domain.Property) string {
	if !p.HasLocation() {
		return ""
	}
	return geohash.EncodeWithPrecision(*p.Latitude, *p.Longitude, geohashPrecision)
}
