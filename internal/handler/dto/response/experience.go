package response

import (
	"time"

	"bookit/internal/usecase/queries"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type ExperienceResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Price       float64   `json:"price"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

type SlotResponse struct {
	ID             int64  `json:"id"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	AvailableSpots int32  `json:"available_spots"`
	TotalSpots     int32  `json:"total_spots"`
}

type ExperienceDetailResponse struct {
	ExperienceResponse
	Slots []SlotResponse `json:"slots"`
}

// Image URLs are excluded from copying on the view side and set by hand.
var decimalToFloat = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: float64(0),
			Fn: func(src interface{}) (interface{}, error) {
				return src.(decimal.Decimal).InexactFloat64(), nil
			},
		},
	},
}

func FromExperienceViews(views []*queries.ExperienceView) ([]ExperienceResponse, error) {
	out := make([]ExperienceResponse, 0, len(views))
	for _, v := range views {
		var r ExperienceResponse
		if err := copier.CopyWithOption(&r, v, decimalToFloat); err != nil {
			return nil, err
		}
		r.ImageURL = v.ImageURL
		out = append(out, r)
	}
	return out, nil
}

func FromExperienceDetailView(v *queries.ExperienceDetailView) (*ExperienceDetailResponse, error) {
	var r ExperienceDetailResponse
	if err := copier.CopyWithOption(&r.ExperienceResponse, &v.ExperienceView, decimalToFloat); err != nil {
		return nil, err
	}
	r.ImageURL = v.ImageURL

	r.Slots = make([]SlotResponse, 0, len(v.Slots))
	if err := copier.Copy(&r.Slots, &v.Slots); err != nil {
		return nil, err
	}
	return &r, nil
}
