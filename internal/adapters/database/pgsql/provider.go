package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/wishzy/wishzy-backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository onto the shared pool.
func NewRepositoryProvider(db *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:       NewUserRepository(db),
		CategoryRepo:   NewCategoryRepository(db),
		CourseRepo:     NewCourseRepository(db),
		ChapterRepo:    NewChapterRepository(db),
		LectureRepo:    NewLectureRepository(db),
		DocumentRepo:   NewDocumentRepository(db),
		VoucherRepo:    NewVoucherRepository(db),
		OrderRepo:      NewOrderRepository(db),
		WishlistRepo:   NewWishlistRepository(db),
		CommentRepo:    NewCommentRepository(db),
		EnrollmentRepo: NewEnrollmentRepository(db),
	}
}
