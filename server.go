package main

import (
	"errors"
	"log"
	"net/http"
	"sync"

	"Damka/game/core"
	"Damka/game/network"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errRoomNotFound = errors.New("room not found")

type roomRegistry struct {
	cfg   Config
	rooms map[string]*network.GameSession
	mu    sync.Mutex
}

func newRoomRegistry(cfg Config) *roomRegistry {
	return &roomRegistry{
		cfg:   cfg,
		rooms: make(map[string]*network.GameSession),
	}
}

type roomOptions struct {
	Size   int    `json:"size" form:"size" binding:"omitempty,oneof=6 8 10"`
	First  string `json:"first" form:"first" binding:"max=32"`
	Second string `json:"second" form:"second" binding:"max=32"`
}

func (r *roomRegistry) withDefaults(opts roomOptions) roomOptions {
	if opts.Size == 0 {
		opts.Size = r.cfg.BoardSize
	}
	if opts.First == "" {
		opts.First = r.cfg.Player1
	}
	if opts.Second == "" {
		opts.Second = r.cfg.Player2
	}
	return opts
}

// open returns the room with id, creating it from opts when missing. An
// empty id always creates a fresh room.
func (r *roomRegistry) open(id string, opts roomOptions) (*network.GameSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id == "" {
		id = uuid.NewString()
	}
	if room, ok := r.rooms[id]; ok {
		return room, nil
	}

	opts = r.withDefaults(opts)
	room, err := network.NewGameSession(id, core.BoardSize(opts.Size), opts.First, opts.Second)
	if err != nil {
		return nil, err
	}
	room.OnEmpty = r.remove
	r.rooms[id] = room
	log.Printf("Created new room: %s (%dx%d, %s vs %s)", id, opts.Size, opts.Size, opts.First, opts.Second)
	return room, nil
}

func (r *roomRegistry) get(id string) (*network.GameSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.rooms[id]
	if !ok {
		return nil, errRoomNotFound
	}
	return room, nil
}

func (r *roomRegistry) remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rooms, id)
	log.Printf("Room %s closed", id)
}

func newRouter(cfg Config) *gin.Engine {
	rooms := newRoomRegistry(cfg)

	r := gin.Default()
	if cfg.StaticDir != "" {
		r.Static("/static", cfg.StaticDir)
	}

	r.GET("/ws", rooms.handleWebSocket)
	r.POST("/rooms", rooms.handleCreateRoom)
	r.GET("/rooms/:id", rooms.handleGetRoom)
	return r
}

func (r *roomRegistry) handleWebSocket(c *gin.Context) {
	var opts roomOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	room, err := r.open(c.Query("room"), opts)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	network.HandleWebSocket(c, room)
}

func (r *roomRegistry) handleCreateRoom(c *gin.Context) {
	var opts roomOptions
	if err := c.ShouldBindJSON(&opts); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	room, err := r.open("", opts)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": room.ID, "state": room.Snapshot()})
}

func (r *roomRegistry) handleGetRoom(c *gin.Context) {
	room, err := r.get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, room.Snapshot())
}
