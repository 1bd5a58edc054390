package database

import (
	"context"

	"github.com/jinzhu/gorm"

	"github.com/VitaminP8/postql/graph/model"
	"github.com/VitaminP8/postql/internal/post"
	"github.com/VitaminP8/postql/models"
)

type PostDatabaseStorage struct {
	db *gorm.DB
}

func NewPostDatabaseStorage(db *gorm.DB) *PostDatabaseStorage {
	return &PostDatabaseStorage{db: db}
}

// withTx выполняет fn в транзакции: commit при успехе, rollback на любой ошибке или панике.
func (s *PostDatabaseStorage) withTx(ctx context.Context, op string, fn func(tx *gorm.DB) error) (err error) {
	tx := s.db.BeginTx(ctx, nil)
	if tx.Error != nil {
		return &post.StorageError{Op: op, Err: tx.Error}
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
		if err != nil {
			tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if cerr := tx.Commit().Error; cerr != nil {
		return &post.StorageError{Op: op, Err: cerr}
	}
	return nil
}

// findPost отличает отсутствие записи от прочих ошибок базы.
func findPost(tx *gorm.DB, op string, id int) (*models.Post, error) {
	var row models.Post
	err := tx.First(&row, "id = ?", id).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, post.NewNotFoundError(id)
	}
	if err != nil {
		return nil, &post.StorageError{Op: op, Err: err}
	}
	return &row, nil
}

func toModel(row *models.Post) *model.Post {
	return &model.Post{
		ID:      int(row.ID),
		Post:    row.Post,
		Content: row.Content,
	}
}

func (s *PostDatabaseStorage) CreatePost(ctx context.Context, in post.Input) (*model.Post, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	row := &models.Post{
		Post:    *in.Post,
		Content: *in.Content,
	}

	err := s.withTx(ctx, "create post", func(tx *gorm.DB) error {
		if err := tx.Create(row).Error; err != nil {
			return &post.StorageError{Op: "create post", Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toModel(row), nil
}

func (s *PostDatabaseStorage) GetPostById(ctx context.Context, id int) (*model.Post, error) {
	var result *model.Post
	err := s.withTx(ctx, "get post by id", func(tx *gorm.DB) error {
		row, err := findPost(tx, "get post by id", id)
		if err != nil {
			return err
		}
		result = toModel(row)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *PostDatabaseStorage) GetAllPosts(ctx context.Context) ([]*model.Post, error) {
	var rows []models.Post
	err := s.withTx(ctx, "get posts", func(tx *gorm.DB) error {
		if err := tx.Order("id asc").Find(&rows).Error; err != nil {
			return &post.StorageError{Op: "get posts", Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	results := make([]*model.Post, 0, len(rows))
	for i := range rows {
		results = append(results, toModel(&rows[i]))
	}

	return results, nil
}

func (s *PostDatabaseStorage) UpdatePost(ctx context.Context, id int, in post.Input) (*model.Post, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var result *model.Post
	err := s.withTx(ctx, "update post", func(tx *gorm.DB) error {
		row, err := findPost(tx, "update post", id)
		if err != nil {
			return err
		}

		row.Post = *in.Post
		row.Content = *in.Content
		if err := tx.Save(row).Error; err != nil {
			return &post.StorageError{Op: "update post", Err: err}
		}

		result = toModel(row)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *PostDatabaseStorage) DeletePostById(ctx context.Context, id int) (*model.Post, error) {
	var snapshot *model.Post
	err := s.withTx(ctx, "delete post", func(tx *gorm.DB) error {
		row, err := findPost(tx, "delete post", id)
		if err != nil {
			return err
		}

		// после удаления строку уже не прочитать
		snapshot = toModel(row)

		if err := tx.Delete(row).Error; err != nil {
			return &post.StorageError{Op: "delete post", Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}
