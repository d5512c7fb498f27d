package internal

import (
	"folio/internal/controllers"
	"folio/internal/providers"
	"net/http"
)

func InitRoutes(
	contentController *controllers.ContentController,
	themeController *controllers.ThemeController,
	contactController *controllers.ContactController,
	authController *controllers.AuthController,
	adminController *controllers.AdminController,
) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/api/content", http.HandlerFunc(contentController.GetContent))
	routers.Get("/api/theme", http.HandlerFunc(themeController.GetTheme))
	routers.Post("/api/contact", http.HandlerFunc(contactController.Submit))

	routers.Post("/admin/login", http.HandlerFunc(authController.Login))

	secured := func(h http.HandlerFunc) http.Handler {
		return authController.RequireSession(h)
	}
	routers.Post("/admin/logout", secured(authController.Logout))
	routers.Get("/admin/me", secured(authController.Me))

	routers.Get("/admin/collections", secured(adminController.Collections))
	routers.Get("/admin/collections/{name}", secured(adminController.List))
	routers.Post("/admin/collections/{name}", secured(adminController.Create))
	routers.Get("/admin/collections/{name}/new", secured(adminController.NewForm))
	routers.Get("/admin/collections/{name}/{id}", secured(adminController.EditForm))
	routers.Put("/admin/collections/{name}/{id}", secured(adminController.Update))
	routers.Delete("/admin/collections/{name}/{id}", secured(adminController.Delete))

	routers.Get("/admin/personal-info", secured(adminController.GetPersonalInfo))
	routers.Put("/admin/personal-info", secured(adminController.SavePersonalInfo))

	routers.Post("/admin/files/resume", secured(adminController.UploadResume))
	routers.Delete("/admin/files/resume", secured(adminController.DeleteResume))
	routers.Post("/admin/files/photo", secured(adminController.UploadPhoto))
	routers.Delete("/admin/files/photo", secured(adminController.DeletePhoto))

	routers.Get("/admin/messages", secured(adminController.Messages))
	routers.Post("/admin/messages/{id}/read", secured(adminController.MarkMessageRead))
	routers.Delete("/admin/messages/{id}", secured(adminController.DeleteMessage))

	routers.Post("/admin/theme/preset", secured(themeController.ApplyPreset))
	routers.Post("/admin/theme/restore", secured(themeController.RestoreHistorical))
	routers.Post("/admin/theme/toggle", secured(themeController.ToggleDark))

	routers.Post("/admin/seed", secured(adminController.Seed))
	routers.Post("/admin/refetch", secured(adminController.Refetch))
	routers.Get("/admin/export", secured(adminController.Export))
	return routers
}
