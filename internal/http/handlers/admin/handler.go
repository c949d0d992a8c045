package admin

import "github.com/salon-next/internal/provider"

// Handler 管理端接口，服务与仓库均取自容器
type Handler struct {
	*provider.Container
}

func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
