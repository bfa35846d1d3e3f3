package auth

import "github.com/labstack/echo/v4"

type Handler interface {
	Register() echo.HandlerFunc
	Login() echo.HandlerFunc
	Logout() echo.HandlerFunc
	GetMe() echo.HandlerFunc
	GetStorageStats() echo.HandlerFunc
}
