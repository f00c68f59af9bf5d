package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/vincegoalt/rydercup2027-api/internal/model"
)

type locationRepository struct {
	db *sqlx.DB
}

// Localized columns resolve the requested language with fallback to English,
// the same COALESCE chain for every backend.
const locationSelect = `
	SELECT
		id, slug, name, county, lat, lng,
		nearest_airport, airport_distance, distance_from_venue,
		COALESCE(CASE WHEN ? = 'es' THEN NULLIF(description_es, '') END, description_en) AS description,
		COALESCE(CASE WHEN ? = 'es' THEN NULLIF(attractions_es, '') END, attractions_en) AS attractions
	FROM locations
`

type locationRow struct {
	ID                string  `db:"id"`
	Slug              string  `db:"slug"`
	Name              string  `db:"name"`
	County            string  `db:"county"`
	Lat               float64 `db:"lat"`
	Lng               float64 `db:"lng"`
	NearestAirport    string  `db:"nearest_airport"`
	AirportDistance   string  `db:"airport_distance"`
	DistanceFromVenue string  `db:"distance_from_venue"`
	Description       string  `db:"description"`
	Attractions       string  `db:"attractions"`
}

func (row locationRow) toView(lang model.Locale) (model.LocationView, error) {
	attractions, err := unmarshalList(row.Attractions)
	if err != nil {
		return model.LocationView{}, err
	}
	return model.LocationView{
		ID:                row.ID,
		Slug:              row.Slug,
		Name:              row.Name,
		County:            row.County,
		Coordinate:        model.Coordinate{Lat: row.Lat, Lng: row.Lng},
		NearestAirport:    row.NearestAirport,
		AirportDistance:   row.AirportDistance,
		DistanceFromVenue: row.DistanceFromVenue,
		Description:       row.Description,
		Attractions:       attractions,
		Language:          lang,
	}, nil
}

func (r *locationRepository) ListLocations(ctx context.Context, lang model.Locale) ([]model.LocationView, error) {
	q := r.db.Rebind(locationSelect + " ORDER BY seq")

	var rows []locationRow
	if err := r.db.SelectContext(ctx, &rows, q, lang, lang); err != nil {
		return nil, err
	}

	views := make([]model.LocationView, 0, len(rows))
	for _, row := range rows {
		v, err := row.toView(lang)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (r *locationRepository) GetLocationBySlug(ctx context.Context, slug string, lang model.Locale) (*model.LocationView, error) {
	q := r.db.Rebind(locationSelect + " WHERE slug = ?")

	var row locationRow
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

type locationInsert struct {
	Seq               int            `db:"seq"`
	ID                string         `db:"id"`
	Slug              string         `db:"slug"`
	Name              string         `db:"name"`
	County            string         `db:"county"`
	Lat               float64        `db:"lat"`
	Lng               float64        `db:"lng"`
	NearestAirport    string         `db:"nearest_airport"`
	AirportDistance   string         `db:"airport_distance"`
	DistanceFromVenue string         `db:"distance_from_venue"`
	DescriptionEN     string         `db:"description_en"`
	DescriptionES     sql.NullString `db:"description_es"`
	AttractionsEN     string         `db:"attractions_en"`
	AttractionsES     sql.NullString `db:"attractions_es"`
}

func (r *locationRepository) BulkInsertLocations(ctx context.Context, locations []model.Location) error {
	inserts := make([]locationInsert, 0, len(locations))
	for i, l := range locations {
		attractionsEN, err := marshalList(l.Attractions.EN)
		if err != nil {
			return err
		}
		attractionsES, err := marshalListOpt(l.Attractions.ES)
		if err != nil {
			return err
		}
		inserts = append(inserts, locationInsert{
			Seq:               i + 1,
			ID:                l.ID,
			Slug:              l.Slug,
			Name:              l.Name,
			County:            l.County,
			Lat:               l.Coordinate.Lat,
			Lng:               l.Coordinate.Lng,
			NearestAirport:    l.NearestAirport,
			AirportDistance:   l.AirportDistance,
			DistanceFromVenue: l.DistanceFromVenue,
			DescriptionEN:     l.Description.EN,
			DescriptionES:     nullIfEmpty(l.Description.ES),
			AttractionsEN:     attractionsEN,
			AttractionsES:     attractionsES,
		})
	}

	for i := 0; i < len(inserts); i += insertChunkSize {
		end := i + insertChunkSize
		if end > len(inserts) {
			end = len(inserts)
		}
		_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO locations (seq, id, slug, name, county, lat, lng, nearest_airport, airport_distance, distance_from_venue, description_en, description_es, attractions_en, attractions_es)
		VALUES (:seq, :id, :slug, :name, :county, :lat, :lng, :nearest_airport, :airport_distance, :distance_from_venue, :description_en, :description_es, :attractions_en, :attractions_es)`,
			inserts[i:end])
		if err != nil {
			return err
		}
	}
	return nil
}
