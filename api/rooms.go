package api

import (
	"net/http"

	"github.com/avelichko/hoteldesk/internal/domain"
	"github.com/avelichko/hoteldesk/internal/service/display"
	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	service display.DisplayUseCase
}

type roomResponse struct {
	Number string `json:"number"`
	Status string `json:"status"`
}

func NewRoomHandler(service display.DisplayUseCase) *RoomHandler {
	return &RoomHandler{service: service}
}

func (h *RoomHandler) Register(router *gin.RouterGroup) {
	router.GET("/rooms", h.list)
}

func (h *RoomHandler) list(c *gin.Context) {
	rooms, err := h.service.ListRooms(c.Request.Context(), c.Query("status"))
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	response := make([]roomResponse, 0, len(rooms))
	for _, room := range rooms {
		response = append(response, toRoomResponse(room))
	}
	c.JSON(http.StatusOK, response)
}

func toRoomResponse(room domain.Room) roomResponse {
	return roomResponse{
		Number: room.Number,
		Status: string(room.Status),
	}
}
