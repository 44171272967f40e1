package readstore

import (
	"time"

	"bookit/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// copyOption maps sqlc column types onto the view types of the query side.
// Nullable text columns are not covered and are set by hand.
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: pgtype.Numeric{},
			DstType: decimal.Decimal{},
			Fn: func(src interface{}) (interface{}, error) {
				return pgconv.DecimalFromNumeric(src.(pgtype.Numeric))
			},
		},
		{
			SrcType: pgtype.Timestamptz{},
			DstType: time.Time{},
			Fn: func(src interface{}) (interface{}, error) {
				return pgconv.TimeFromPgtype(src.(pgtype.Timestamptz)), nil
			},
		},
	},
}

func copyRow(to, from interface{}) error {
	return copier.CopyWithOption(to, from, copyOption)
}
