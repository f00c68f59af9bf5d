package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/vincegoalt/rydercup2027-api/internal/model"
)

type faqRepository struct {
	db *sqlx.DB
}

const faqSelect = `
	SELECT
		id, category, related_pages, keywords,
		COALESCE(CASE WHEN ? = 'es' THEN NULLIF(question_es, '') END, question_en) AS question,
		COALESCE(CASE WHEN ? = 'es' THEN NULLIF(answer_es, '') END, answer_en) AS answer
	FROM faqs
`

type faqRow struct {
	ID           string `db:"id"`
	Category     string `db:"category"`
	RelatedPages string `db:"related_pages"`
	Keywords     string `db:"keywords"`
	Question     string `db:"question"`
	Answer       string `db:"answer"`
}

func (row faqRow) toView(lang model.Locale) (model.FAQView, error) {
	related, err := unmarshalList(row.RelatedPages)
	if err != nil {
		return model.FAQView{}, err
	}
	keywords, err := unmarshalList(row.Keywords)
	if err != nil {
		return model.FAQView{}, err
	}
	return model.FAQView{
		ID:           row.ID,
		Category:     model.FAQCategory(row.Category),
		Question:     row.Question,
		Answer:       row.Answer,
		RelatedPages: related,
		Keywords:     keywords,
		Language:     lang,
	}, nil
}

func (r *faqRepository) selectFAQs(ctx context.Context, q string, lang model.Locale, args ...any) ([]model.FAQView, error) {
	bound := r.db.Rebind(q)

	params := append([]any{lang, lang}, args...)
	var rows []faqRow
	if err := r.db.SelectContext(ctx, &rows, bound, params...); err != nil {
		return nil, err
	}

	views := make([]model.FAQView, 0, len(rows))
	for _, row := range rows {
		v, err := row.toView(lang)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (r *faqRepository) ListFAQs(ctx context.Context, lang model.Locale) ([]model.FAQView, error) {
	return r.selectFAQs(ctx, faqSelect+" ORDER BY seq", lang)
}

func (r *faqRepository) ListFAQsByCategory(ctx context.Context, category model.FAQCategory, lang model.Locale) ([]model.FAQView, error) {
	return r.selectFAQs(ctx, faqSelect+" WHERE category = ? ORDER BY seq", lang, string(category))
}

func (r *faqRepository) GetFAQByID(ctx context.Context, id string, lang model.Locale) (*model.FAQView, error) {
	q := r.db.Rebind(faqSelect + " WHERE id = ?")

	var row faqRow
	if err := r.db.GetContext(ctx, &row, q, lang, lang, id); err != nil {
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

type faqInsert struct {
	Seq          int            `db:"seq"`
	ID           string         `db:"id"`
	Category     string         `db:"category"`
	QuestionEN   string         `db:"question_en"`
	QuestionES   sql.NullString `db:"question_es"`
	AnswerEN     string         `db:"answer_en"`
	AnswerES     sql.NullString `db:"answer_es"`
	RelatedPages string         `db:"related_pages"`
	Keywords     string         `db:"keywords"`
}

func (r *faqRepository) BulkInsertFAQs(ctx context.Context, faqs []model.FAQ) error {
	inserts := make([]faqInsert, 0, len(faqs))
	for i, f := range faqs {
		related, err := marshalList(f.RelatedPages)
		if err != nil {
			return err
		}
		keywords, err := marshalList(f.Keywords)
		if err != nil {
			return err
		}
		inserts = append(inserts, faqInsert{
			Seq:          i + 1,
			ID:           f.ID,
			Category:     string(f.Category),
			QuestionEN:   f.Question.EN,
			QuestionES:   nullIfEmpty(f.Question.ES),
			AnswerEN:     f.Answer.EN,
			AnswerES:     nullIfEmpty(f.Answer.ES),
			RelatedPages: related,
			Keywords:     keywords,
		})
	}

	for i := 0; i < len(inserts); i += insertChunkSize {
		end := i + insertChunkSize
		if end > len(inserts) {
			end = len(inserts)
		}
		_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO faqs (seq, id, category, question_en, question_es, answer_en, answer_es, related_pages, keywords)
		VALUES (:seq, :id, :category, :question_en, :question_es, :answer_en, :answer_es, :related_pages, :keywords)`,
			inserts[i:end])
		if err != nil {
			return err
		}
	}
	return nil
}
