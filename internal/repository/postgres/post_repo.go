package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/vedran77/inkwell/internal/domain"
)

const postCols = "id, title, content, owner_id, created_at, updated_at"

type PostRepo struct {
	pool PgxPool
}

func NewPostRepo(pool PgxPool) *PostRepo {
	return &PostRepo{pool: pool}
}

func (r *PostRepo) Create(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO posts (id, title, content, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		post.ID, post.Title, post.Content, post.OwnerID,
		post.CreatedAt, post.UpdatedAt,
	)
	return err
}

func (r *PostRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	return r.queryPost(ctx, "SELECT "+postCols+" FROM posts WHERE id = $1", id)
}

func (r *PostRepo) List(ctx context.Context) ([]domain.Post, error) {
	rows, err := r.pool.Query(ctx, "SELECT "+postCols+" FROM posts ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Content, &p.OwnerID,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// UpdateOwned performs the ownership check and the mutation in one
// statement, so a concurrent owner change cannot slip between them.
func (r *PostRepo) UpdateOwned(ctx context.Context, id, ownerID uuid.UUID, title, content *string) (*domain.Post, error) {
	query := `
		UPDATE posts
		SET title = COALESCE($3, title),
			content = COALESCE($4, content),
			updated_at = now()
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + postCols

	return r.queryPost(ctx, query, id, ownerID, title, content)
}

func (r *PostRepo) DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PostRepo) queryPost(ctx context.Context, query string, args ...any) (*domain.Post, error) {
	var p domain.Post
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.Title, &p.Content, &p.OwnerID,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
