package services

import (
	portsrepo "github.com/wishzy/wishzy-backend/internal/core/ports/repositories"
	portssvc "github.com/wishzy/wishzy-backend/internal/core/ports/services"
	"github.com/wishzy/wishzy-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The mail sender and payment gateway are adapters constructed at startup.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, mailSender portssvc.MailSenderSvc, gateway portssvc.PaymentGatewaySvc) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.GoogleOAuth = NewGoogleOAuthService(cfg)
	container.Auth = NewAuthService(cfg, repos.UserRepo, mailSender, container.GoogleOAuth)

	container.User = NewUserService(repos.UserRepo)
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Course = NewCourseService(repos.CourseRepo, repos.CategoryRepo)
	container.Chapter = NewChapterService(repos.ChapterRepo, repos.CourseRepo)
	container.Lecture = NewLectureService(repos.LectureRepo, repos.ChapterRepo)
	container.Document = NewDocumentService(repos.DocumentRepo, repos.CourseRepo, repos.ChapterRepo, repos.LectureRepo)
	container.Voucher = NewVoucherService(repos.VoucherRepo, repos.CategoryRepo, repos.CourseRepo)
	container.Order = NewOrderService(repos.OrderRepo, repos.CourseRepo, repos.VoucherRepo, repos.EnrollmentRepo, gateway)
	container.Enrollment = NewEnrollmentService(repos.EnrollmentRepo, repos.CourseRepo)
	container.Wishlist = NewWishlistService(repos.WishlistRepo, repos.CourseRepo)
	container.Comment = NewCommentService(repos.CommentRepo, repos.CourseRepo, repos.LectureRepo)

	return container
}
