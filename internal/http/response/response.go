package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body 接口统一响应体，业务错误也以 HTTP 200 返回，由 status_code 区分
type Body struct {
	StatusCode int         `json:"status_code"`
	Msg        string      `json:"msg"`
	Data       interface{} `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination 列表分页信息
type Pagination struct {
	Page      int   `json:"page"`
	PageSize  int   `json:"page_size"`
	Total     int64 `json:"total"`
	TotalPage int64 `json:"total_page"`
}

// BuildPagination 由总数推算页数
func BuildPagination(page, pageSize int, total int64) Pagination {
	p := Pagination{Page: page, PageSize: pageSize, Total: total}
	if pageSize > 0 && total > 0 {
		p.TotalPage = total / int64(pageSize)
		if total%int64(pageSize) != 0 {
			p.TotalPage++
		}
	}
	return p
}

func write(c *gin.Context, body Body) {
	c.JSON(http.StatusOK, body)
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	write(c, Body{StatusCode: CodeOK, Msg: "success", Data: data})
}

// SuccessWithPage 列表响应
func SuccessWithPage(c *gin.Context, data interface{}, pagination Pagination) {
	write(c, Body{StatusCode: CodeOK, Msg: "success", Data: data, Pagination: &pagination})
}

// Error 错误响应，data 中带上 request_id 便于排查
func Error(c *gin.Context, code int, msg string) {
	var data interface{}
	if id := c.GetString("request_id"); id != "" {
		data = gin.H{"request_id": id}
	}
	write(c, Body{StatusCode: code, Msg: msg, Data: data})
}
