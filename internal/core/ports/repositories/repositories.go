package repositories

// RepositoryProvider bundles every repository the service container needs.
// Populated once at startup from the pgsql adapters.
type RepositoryProvider struct {
	UserRepo       UserRepositoryFacade
	CategoryRepo   CategoryRepositoryFacade
	CourseRepo     CourseRepositoryFacade
	ChapterRepo    ChapterRepositoryFacade
	LectureRepo    LectureRepositoryFacade
	DocumentRepo   DocumentRepositoryFacade
	VoucherRepo    VoucherRepositoryFacade
	OrderRepo      OrderRepositoryFacade
	WishlistRepo   WishlistRepositoryFacade
	CommentRepo    CommentRepositoryFacade
	EnrollmentRepo EnrollmentRepositoryFacade
}
