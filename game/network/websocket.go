package network

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"

	"Damka/game/core"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

var (
	errNotYourTurn = errors.New("not your turn")
	errUnknownType = errors.New("unknown message type")
	errNoHumanSeat = errors.New("a room needs at least one human player")
)

// GameSession is one room: an engine and the clients seated at it.
type GameSession struct {
	ID      string
	Game    *core.Game
	Clients map[*websocket.Conn]core.Side
	// OnEmpty runs once the last client has left.
	OnEmpty func(id string)

	lastMoves []string
	mu        sync.Mutex
}

func NewGameSession(id string, size core.BoardSize, firstName, secondName string) (*GameSession, error) {
	if firstName == core.ComputerName && secondName == core.ComputerName {
		return nil, errNoHumanSeat
	}
	g, err := core.NewGame(size, firstName, secondName)
	if err != nil {
		return nil, err
	}
	s := &GameSession{
		ID:      id,
		Game:    g,
		Clients: make(map[*websocket.Conn]core.Side),
	}
	s.playComputer()
	return s, nil
}

type inbound struct {
	Type    string          `json:"type"`
	Content json.RawMessage `json:"content"`
}

func HandleWebSocket(c *gin.Context, session *GameSession) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("WebSocket upgrade failed:", err)
		return
	}
	defer session.leave(conn)

	session.mu.Lock()
	seat, ok := session.freeSeat()
	if !ok {
		conn.WriteJSON(Message{Type: "error", Content: "Game is full"})
		session.mu.Unlock()
		return
	}
	session.Clients[conn] = seat
	conn.WriteJSON(Message{
		Type: "connection_ack",
		Content: gin.H{
			"room":  session.ID,
			"side":  seat.String(),
			"state": session.stateFor(seat),
		},
	})
	session.mu.Unlock()
	log.Printf("Room %s: %s seat taken", session.ID, seat)

	for {
		var msg inbound
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Room %s: read error: %v", session.ID, err)
			}
			return
		}
		session.process(conn, msg)
	}
}

// freeSeat returns the first human side nobody holds yet.
func (s *GameSession) freeSeat() (core.Side, bool) {
	taken := map[core.Side]bool{}
	for _, side := range s.Clients {
		taken[side] = true
	}
	for _, side := range []core.Side{core.First, core.Second} {
		if !taken[side] && !s.Game.Player(side).IsComputer() {
			return side, true
		}
	}
	return 0, false
}

func (s *GameSession) leave(conn *websocket.Conn) {
	s.mu.Lock()
	_, seated := s.Clients[conn]
	delete(s.Clients, conn)
	empty := seated && len(s.Clients) == 0
	s.mu.Unlock()
	conn.Close()

	if empty && s.OnEmpty != nil {
		s.OnEmpty(s.ID)
	}
}

func (s *GameSession) process(conn *websocket.Conn, msg inbound) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seat := s.Clients[conn]
	broadcast, err := s.handle(seat, msg)
	if err != nil {
		sendError(conn, err.Error())
		return
	}
	if !broadcast {
		conn.WriteJSON(Message{Type: "state", Content: s.stateFor(seat)})
		return
	}
	s.broadcast()
}

// handle applies one client message for seat. It reports whether every
// client needs a fresh state. Callers hold s.mu.
func (s *GameSession) handle(seat core.Side, msg inbound) (bool, error) {
	switch msg.Type {
	case "get_state":
		return false, nil
	case "restart":
		s.Game.RestartGame()
		s.lastMoves = nil
		s.playComputer()
		return true, nil
	}

	if s.Game.CurrentPlayer().Side() != seat {
		return false, errNotYourTurn
	}
	s.lastMoves = nil

	switch msg.Type {
	case "move":
		var req MoveRequest
		if err := json.Unmarshal(msg.Content, &req); err != nil {
			return false, err
		}
		if err := s.Game.TryMove(req.From, req.To); err != nil {
			return false, err
		}
		s.lastMoves = append(s.lastMoves, req.From+"-"+req.To)
	case "computer_move":
		m, err := s.Game.ActivateComputerMove()
		if err != nil {
			return false, err
		}
		s.lastMoves = append(s.lastMoves, m.String())
	case "resign":
		if s.Game.IsFinished() {
			return false, core.ErrGameFinished
		}
		s.Game.EndGame()
	default:
		return false, errUnknownType
	}

	s.playComputer()
	return true, nil
}

// playComputer lets the computer seat move until the human is to play.
// NewGameSession guarantees a human seat, so the loop is bounded.
func (s *GameSession) playComputer() {
	for !s.Game.IsFinished() && s.Game.CurrentPlayer().IsComputer() {
		m, err := s.Game.ActivateComputerMove()
		if err != nil {
			log.Printf("Room %s: computer could not move: %v", s.ID, err)
			return
		}
		s.lastMoves = append(s.lastMoves, m.String())
	}
}

// Snapshot returns the state as seen by a spectator.
func (s *GameSession) Snapshot() GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return NewGameState(s.Game)
}

func (s *GameSession) stateFor(seat core.Side) GameState {
	state := NewGameState(s.Game)
	state.YourSide = seat.String()
	state.LastMoves = append([]string(nil), s.lastMoves...)
	return state
}

func (s *GameSession) broadcast() {
	for client, seat := range s.Clients {
		if err := client.WriteJSON(Message{Type: "state", Content: s.stateFor(seat)}); err != nil {
			log.Printf("Room %s: error sending state: %v", s.ID, err)
			// The read loop fails on the closed conn and leave removes it.
			client.Close()
		}
	}
}

func sendError(conn *websocket.Conn, message string) {
	if err := conn.WriteJSON(Message{Type: "error", Content: message}); err != nil {
		log.Println("Error sending error message:", err)
	}
}
