package apimodels

import "github.com/gofiber/fiber/v2"

type Response struct {
	Code  int         `json:"code"`            //код результата, 200 при успехе
	Data  interface{} `json:"data,omitempty"`  //данные ответа
	Error string      `json:"error,omitempty"` //сообщение ошибки
}

type ScrollerResponse struct {
	Response
	RowCount int64 `json:"row_count,omitempty"` //для списков, общее кол-во записей, учитывая фильтр (если он есть)
}

func NewError(code int, message string) Response {
	return Response{
		Code:  code,
		Error: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Code: fiber.StatusOK,
		Data: data,
	}
}

func NewScrollerResponse(data interface{}, rowCount int64) ScrollerResponse {
	return ScrollerResponse{
		Response: Response{
			Code: fiber.StatusOK,
			Data: data,
		},
		RowCount: rowCount,
	}
}

type Pagination struct {
	Limit int `json:"limit"` // Записей на странице
	Page  int `json:"page"`  // Страница (1,2,3..)
}

func (r Pagination) GetPage() (page, limit int) {
	page = 1
	limit = 10
	if r.Page > 0 {
		page = r.Page
	}
	if r.Limit > 0 {
		limit = r.Limit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
