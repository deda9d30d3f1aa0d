package response

import (
	"time"

	"car-rental-api/internal/usecase/queries"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type CarResponse struct {
	ID           int64     `json:"id"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	Status       string    `json:"status"`
	PricePerHour string    `json:"price_per_hour"`
	MerchantID   int64     `json:"merchant_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// Money is rendered with two decimals, matching NUMERIC(10,2).
var decimalToString = copier.TypeConverter{
	SrcType: decimal.Decimal{},
	DstType: copier.String,
	Fn: func(src interface{}) (interface{}, error) {
		d, ok := src.(decimal.Decimal)
		if !ok {
			return nil, errUnexpectedSource
		}
		return d.StringFixed(2), nil
	},
}

func FromCarView(v *queries.CarView) (CarResponse, error) {
	var resp CarResponse
	err := copier.CopyWithOption(&resp, v, copier.Option{
		Converters: []copier.TypeConverter{decimalToString},
	})
	if err != nil {
		return CarResponse{}, err
	}
	return resp, nil
}

func FromCarPage(p *queries.Page[queries.CarView]) (PageResponse[CarResponse], error) {
	items := make([]CarResponse, 0, len(p.Items))
	for i := range p.Items {
		resp, err := FromCarView(&p.Items[i])
		if err != nil {
			return PageResponse[CarResponse]{}, err
		}
		items = append(items, resp)
	}
	return PageResponse[CarResponse]{Items: items, Pagination: p.Pagination}, nil
}
