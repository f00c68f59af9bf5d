package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/vincegoalt/rydercup2027-api/internal/model"
)

type courseRepository struct {
	db *sqlx.DB
}

const courseSelect = `
	SELECT
		id, slug, name, location, county, distance, distance_km,
		course_type, price, designer, image, lat, lng,
		COALESCE(CASE WHEN ? = 'es' THEN NULLIF(description_es, '') END, description_en) AS description,
		COALESCE(CASE WHEN ? = 'es' THEN NULLIF(highlights_es, '') END, highlights_en) AS highlights
	FROM courses
`

type courseRow struct {
	ID          string  `db:"id"`
	Slug        string  `db:"slug"`
	Name        string  `db:"name"`
	Location    string  `db:"location"`
	County      string  `db:"county"`
	Distance    string  `db:"distance"`
	DistanceKm  float64 `db:"distance_km"`
	CourseType  string  `db:"course_type"`
	Price       string  `db:"price"`
	Designer    string  `db:"designer"`
	Image       string  `db:"image"`
	Lat         float64 `db:"lat"`
	Lng         float64 `db:"lng"`
	Description string  `db:"description"`
	Highlights  string  `db:"highlights"`
}

func (row courseRow) toView(lang model.Locale) (model.CourseView, error) {
	highlights, err := unmarshalList(row.Highlights)
	if err != nil {
		return model.CourseView{}, err
	}
	return model.CourseView{
		ID:          row.ID,
		Slug:        row.Slug,
		Name:        row.Name,
		Location:    row.Location,
		County:      row.County,
		Distance:    row.Distance,
		DistanceKm:  row.DistanceKm,
		Type:        model.CourseType(row.CourseType),
		Price:       row.Price,
		Designer:    row.Designer,
		Description: row.Description,
		Highlights:  highlights,
		Image:       row.Image,
		Coordinate:  model.Coordinate{Lat: row.Lat, Lng: row.Lng},
		Language:    lang,
	}, nil
}

func (r *courseRepository) selectCourses(ctx context.Context, q string, lang model.Locale, args ...any) ([]model.CourseView, error) {
	bound := r.db.Rebind(q)

	params := append([]any{lang, lang}, args...)
	var rows []courseRow
	if err := r.db.SelectContext(ctx, &rows, bound, params...); err != nil {
		return nil, err
	}

	views := make([]model.CourseView, 0, len(rows))
	for _, row := range rows {
		v, err := row.toView(lang)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (r *courseRepository) ListCourses(ctx context.Context, lang model.Locale) ([]model.CourseView, error) {
	return r.selectCourses(ctx, courseSelect+" ORDER BY seq", lang)
}

func (r *courseRepository) ListCoursesWithinVenueRadius(ctx context.Context, maxKm float64, lang model.Locale) ([]model.CourseView, error) {
	// seq order keeps proximity tie-breaking deterministic (catalog order)
	return r.selectCourses(ctx, courseSelect+" WHERE distance_km < ? ORDER BY seq", lang, maxKm)
}

func (r *courseRepository) GetCourseBySlug(ctx context.Context, slug string, lang model.Locale) (*model.CourseView, error) {
	q := r.db.Rebind(courseSelect + " WHERE slug = ?")

	var row courseRow
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

type courseInsert struct {
	Seq           int            `db:"seq"`
	ID            string         `db:"id"`
	Slug          string         `db:"slug"`
	Name          string         `db:"name"`
	Location      string         `db:"location"`
	County        string         `db:"county"`
	Distance      string         `db:"distance"`
	DistanceKm    float64        `db:"distance_km"`
	CourseType    string         `db:"course_type"`
	Price         string         `db:"price"`
	Designer      string         `db:"designer"`
	DescriptionEN string         `db:"description_en"`
	DescriptionES sql.NullString `db:"description_es"`
	HighlightsEN  string         `db:"highlights_en"`
	HighlightsES  sql.NullString `db:"highlights_es"`
	Image         string         `db:"image"`
	Lat           float64        `db:"lat"`
	Lng           float64        `db:"lng"`
}

func (r *courseRepository) BulkInsertCourses(ctx context.Context, courses []model.GolfCourse) error {
	inserts := make([]courseInsert, 0, len(courses))
	for i, c := range courses {
		highlightsEN, err := marshalList(c.Highlights.EN)
		if err != nil {
			return err
		}
		highlightsES, err := marshalListOpt(c.Highlights.ES)
		if err != nil {
			return err
		}
		inserts = append(inserts, courseInsert{
			Seq:           i + 1,
			ID:            c.ID,
			Slug:          c.Slug,
			Name:          c.Name,
			Location:      c.Location,
			County:        c.County,
			Distance:      c.Distance,
			DistanceKm:    c.DistanceKm,
			CourseType:    string(c.Type),
			Price:         c.Price,
			Designer:      c.Designer,
			DescriptionEN: c.Description.EN,
			DescriptionES: nullIfEmpty(c.Description.ES),
			HighlightsEN:  highlightsEN,
			HighlightsES:  highlightsES,
			Image:         c.Image,
			Lat:           c.Coordinate.Lat,
			Lng:           c.Coordinate.Lng,
		})
	}

	for i := 0; i < len(inserts); i += insertChunkSize {
		end := i + insertChunkSize
		if end > len(inserts) {
			end = len(inserts)
		}
		_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO courses (seq, id, slug, name, location, county, distance, distance_km, course_type, price, designer, description_en, description_es, highlights_en, highlights_es, image, lat, lng)
		VALUES (:seq, :id, :slug, :name, :location, :county, :distance, :distance_km, :course_type, :price, :designer, :description_en, :description_es, :highlights_en, :highlights_es, :image, :lat, :lng)`,
			inserts[i:end])
		if err != nil {
			return err
		}
	}
	return nil
}
