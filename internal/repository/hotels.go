package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/vincegoalt/rydercup2027-api/internal/model"
)

type hotelRepository struct {
	db *sqlx.DB
}

const hotelSelect = `
	SELECT
		id, slug, name, location, county, distance, distance_km,
		price_range, rating, image, lat, lng,
		COALESCE(CASE WHEN ? = 'es' THEN NULLIF(description_es, '') END, description_en) AS description,
		COALESCE(CASE WHEN ? = 'es' THEN NULLIF(amenities_es, '') END, amenities_en) AS amenities
	FROM hotels
`

type hotelRow struct {
	ID          string  `db:"id"`
	Slug        string  `db:"slug"`
	Name        string  `db:"name"`
	Location    string  `db:"location"`
	County      string  `db:"county"`
	Distance    string  `db:"distance"`
	DistanceKm  float64 `db:"distance_km"`
	PriceRange  string  `db:"price_range"`
	Rating      float64 `db:"rating"`
	Image       string  `db:"image"`
	Lat         float64 `db:"lat"`
	Lng         float64 `db:"lng"`
	Description string  `db:"description"`
	Amenities   string  `db:"amenities"`
}

func (row hotelRow) toView(lang model.Locale) (model.HotelView, error) {
	amenities, err := unmarshalList(row.Amenities)
	if err != nil {
		return model.HotelView{}, err
	}
	return model.HotelView{
		ID:          row.ID,
		Slug:        row.Slug,
		Name:        row.Name,
		Location:    row.Location,
		County:      row.County,
		Distance:    row.Distance,
		DistanceKm:  row.DistanceKm,
		PriceRange:  model.PriceRange(row.PriceRange),
		Rating:      row.Rating,
		Amenities:   amenities,
		Description: row.Description,
		Image:       row.Image,
		Coordinate:  model.Coordinate{Lat: row.Lat, Lng: row.Lng},
		Language:    lang,
	}, nil
}

func (r *hotelRepository) selectHotels(ctx context.Context, q string, lang model.Locale, args ...any) ([]model.HotelView, error) {
	bound := r.db.Rebind(q)

	params := append([]any{lang, lang}, args...)
	var rows []hotelRow
	if err := r.db.SelectContext(ctx, &rows, bound, params...); err != nil {
		return nil, err
	}

	views := make([]model.HotelView, 0, len(rows))
	for _, row := range rows {
		v, err := row.toView(lang)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (r *hotelRepository) ListHotels(ctx context.Context, lang model.Locale) ([]model.HotelView, error) {
	return r.selectHotels(ctx, hotelSelect+" ORDER BY seq", lang)
}

func (r *hotelRepository) ListHotelsWithinVenueRadius(ctx context.Context, maxKm float64, lang model.Locale) ([]model.HotelView, error) {
	// seq order keeps proximity tie-breaking deterministic (catalog order)
	return r.selectHotels(ctx, hotelSelect+" WHERE distance_km < ? ORDER BY seq", lang, maxKm)
}

func (r *hotelRepository) GetHotelBySlug(ctx context.Context, slug string, lang model.Locale) (*model.HotelView, error) {
	q := r.db.Rebind(hotelSelect + " WHERE slug = ?")

	var row hotelRow
	if err := r.db.GetContext(ctx, &row, q, lang, lang, slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	v, err := row.toView(lang)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

type hotelInsert struct {
	Seq           int            `db:"seq"`
	ID            string         `db:"id"`
	Slug          string         `db:"slug"`
	Name          string         `db:"name"`
	Location      string         `db:"location"`
	County        string         `db:"county"`
	Distance      string         `db:"distance"`
	DistanceKm    float64        `db:"distance_km"`
	PriceRange    string         `db:"price_range"`
	Rating        float64        `db:"rating"`
	AmenitiesEN   string         `db:"amenities_en"`
	AmenitiesES   sql.NullString `db:"amenities_es"`
	DescriptionEN string         `db:"description_en"`
	DescriptionES sql.NullString `db:"description_es"`
	Image         string         `db:"image"`
	Lat           float64        `db:"lat"`
	Lng           float64        `db:"lng"`
}

func (r *hotelRepository) BulkInsertHotels(ctx context.Context, hotels []model.Hotel) error {
	inserts := make([]hotelInsert, 0, len(hotels))
	for i, h := range hotels {
		amenitiesEN, err := marshalList(h.Amenities.EN)
		if err != nil {
			return err
		}
		amenitiesES, err := marshalListOpt(h.Amenities.ES)
		if err != nil {
			return err
		}
		inserts = append(inserts, hotelInsert{
			Seq:           i + 1,
			ID:            h.ID,
			Slug:          h.Slug,
			Name:          h.Name,
			Location:      h.Location,
			County:        h.County,
			Distance:      h.Distance,
			DistanceKm:    h.DistanceKm,
			PriceRange:    string(h.PriceRange),
			Rating:        h.Rating,
			AmenitiesEN:   amenitiesEN,
			AmenitiesES:   amenitiesES,
			DescriptionEN: h.Description.EN,
			DescriptionES: nullIfEmpty(h.Description.ES),
			Image:         h.Image,
			Lat:           h.Coordinate.Lat,
			Lng:           h.Coordinate.Lng,
		})
	}

	for i := 0; i < len(inserts); i += insertChunkSize {
		end := i + insertChunkSize
		if end > len(inserts) {
			end = len(inserts)
		}
		_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO hotels (seq, id, slug, name, location, county, distance, distance_km, price_range, rating, amenities_en, amenities_es, description_en, description_es, image, lat, lng)
		VALUES (:seq, :id, :slug, :name, :location, :county, :distance, :distance_km, :price_range, :rating, :amenities_en, :amenities_es, :description_en, :description_es, :image, :lat, :lng)`,
			inserts[i:end])
		if err != nil {
			return err
		}
	}
	return nil
}
