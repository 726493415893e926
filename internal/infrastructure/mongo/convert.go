package mongo

import (
	"regexp"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Los montos se guardan como Decimal128 para que $gte/$lte comparen numéricamente.

func toDecimal128(d decimal.Decimal) (bson.Decimal128, error) {
	return bson.ParseDecimal128(d.String())
}

func fromDecimal128(v bson.Decimal128) decimal.Decimal {
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

func toNullDecimal128(d decimal.NullDecimal) (*bson.Decimal128, error) {
	if !d.Valid {
		return nil, nil
	}
	v, err := toDecimal128(d.Decimal)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func fromNullDecimal128(v *bson.Decimal128) decimal.NullDecimal {
	if v == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(fromDecimal128(*v))
}

// containsCI regex escapada, sin distinguir mayúsculas.
func containsCI(q string) bson.Regex {
	return bson.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
}

// newestFirst orden estable de los listados.
var newestFirst = bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}
