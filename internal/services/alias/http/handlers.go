// Package http provides http transport for the alias vocabulary
package http

import (
	stdhttp "net/http"

	"tilltalk/internal/modkit/httpkit"
	"tilltalk/internal/services/alias/domain"
	svc "tilltalk/internal/services/alias/service"
)

// Register mounts alias endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.list)
	httpkit.PostJSON[domain.Pair](r, "/", h.add)
	httpkit.DeleteJSON[domain.RemoveInput](r, "/", h.remove)
}

type handlers struct{ svc svc.Service }

// @Summary List learned vocabulary
// @Tags Aliases
// @Produce json
// @Success 200 {array} domain.Pair "ok"
// @Router /aliases [get]
func (h *handlers) list(_ *stdhttp.Request) (any, error) {
	return h.svc.All(), nil
}

// @Summary Learn a new alias
// @Tags Aliases
// @Accept json
// @Produce json
// @Param payload body domain.Pair true "Mapping"
// @Success 200 {object} domain.Pair "ok"
// @Router /aliases [post]
func (h *handlers) add(r *stdhttp.Request, in domain.Pair) (any, error) {
	if err := h.svc.Add(r.Context(), in.Alias, in.Target); err != nil {
		return nil, err
	}
	return domain.Pair{Alias: in.Alias, Target: in.Target}, nil
}

// @Summary Forget an alias
// @Tags Aliases
// @Accept json
// @Produce json
// @Param payload body domain.RemoveInput true "Alias"
// @Success 200 {object} domain.RemoveInput "ok"
// @Router /aliases [delete]
func (h *handlers) remove(r *stdhttp.Request, in domain.RemoveInput) (any, error) {
	if err := h.svc.Remove(r.Context(), in.Alias); err != nil {
		return nil, err
	}
	return in, nil
}
