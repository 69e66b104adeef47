package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) JWTMiddlewareWithRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("user"))
	adminAuthMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("admin"))

	mux := pat.New()

	// Users
	mux.Post("/user/sign_up", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/user/sign_in", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Post("/user/sign_out", authMiddleware.ThenFunc(app.userHandler.SignOut))

	// Catalog (public browse surface)
	mux.Get("/catalog", standardMiddleware.ThenFunc(app.catalogHandler.Browse))
	mux.Post("/catalog/browse", standardMiddleware.ThenFunc(app.catalogHandler.Browse))
	mux.Get("/catalog/free", standardMiddleware.ThenFunc(app.catalogHandler.FreeItems))
	mux.Get("/catalog/genres/popular", standardMiddleware.ThenFunc(app.catalogHandler.PopularGenres))
	mux.Get("/catalog/item/:id", standardMiddleware.ThenFunc(app.catalogHandler.GetItem))

	// Games (admin catalog management)
	mux.Post("/game", adminAuthMiddleware.ThenFunc(app.gameHandler.CreateGame))
	mux.Get("/game", standardMiddleware.ThenFunc(app.gameHandler.GetGames))
	mux.Get("/game/:id", standardMiddleware.ThenFunc(app.gameHandler.GetGameByID))
	mux.Put("/game/:id", adminAuthMiddleware.ThenFunc(app.gameHandler.UpdateGame))
	mux.Del("/game/:id", adminAuthMiddleware.ThenFunc(app.gameHandler.DeleteGame))

	// DLCs
	mux.Post("/dlc", adminAuthMiddleware.ThenFunc(app.dlcHandler.CreateDLC))
	mux.Get("/dlc", standardMiddleware.ThenFunc(app.dlcHandler.GetDLCs))
	mux.Get("/dlc/:id", standardMiddleware.ThenFunc(app.dlcHandler.GetDLCByID))
	mux.Put("/dlc/:id", adminAuthMiddleware.ThenFunc(app.dlcHandler.UpdateDLC))
	mux.Del("/dlc/:id", adminAuthMiddleware.ThenFunc(app.dlcHandler.DeleteDLC))

	// Cart
	mux.Get("/cart", authMiddleware.ThenFunc(app.cartHandler.GetCart))
	mux.Post("/cart", authMiddleware.ThenFunc(app.cartHandler.AddToCart))
	mux.Del("/cart/:item_id", authMiddleware.ThenFunc(app.cartHandler.RemoveFromCart))
	mux.Post("/cart/move_to_wishlist", authMiddleware.ThenFunc(app.cartHandler.MoveToWishlist))

	// Wishlist
	mux.Get("/wishlist", authMiddleware.ThenFunc(app.wishlistHandler.GetWishlist))
	mux.Post("/wishlist", authMiddleware.ThenFunc(app.wishlistHandler.AddToWishlist))
	mux.Del("/wishlist/:item_id", authMiddleware.ThenFunc(app.wishlistHandler.RemoveFromWishlist))

	// Orders and library
	mux.Post("/checkout", authMiddleware.ThenFunc(app.orderHandler.Checkout))
	mux.Post("/checkout/buy_now", authMiddleware.ThenFunc(app.orderHandler.BuyNow))
	mux.Get("/library", authMiddleware.ThenFunc(app.orderHandler.GetLibrary))
	mux.Get("/library/owned/:item_id", authMiddleware.ThenFunc(app.orderHandler.CheckOwnership))

	return standardMiddleware.Then(mux)
}
