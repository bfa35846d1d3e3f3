package admin

import "github.com/labstack/echo/v4"

type Handler interface {
	ListUsers() echo.HandlerFunc
	SearchUsers() echo.HandlerFunc
	CreateUser() echo.HandlerFunc
	UpdateUser() echo.HandlerFunc
	DeleteUser() echo.HandlerFunc
	GetStats() echo.HandlerFunc
}
