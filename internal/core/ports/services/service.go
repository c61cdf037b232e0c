package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Auth        AuthSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade
	User        UserSvcFacade
	Category    CategorySvcFacade
	Course      CourseSvcFacade
	Chapter     ChapterSvcFacade
	Lecture     LectureSvcFacade
	Document    DocumentSvcFacade
	Voucher     VoucherSvcFacade
	Order       OrderSvcFacade
	Enrollment  EnrollmentSvcFacade
	Wishlist    WishlistSvcFacade
	Comment     CommentSvcFacade
}
