package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	gerrors "github.com/matzehuels/galaxy/pkg/errors"
	"github.com/matzehuels/galaxy/pkg/eventbus"
	"github.com/matzehuels/galaxy/pkg/galaxy"
	"github.com/matzehuels/galaxy/pkg/geometry"
	"github.com/matzehuels/galaxy/pkg/viewport"
)

const (
	writeTimeout   = 10 * time.Second
	maxMessageSize = 4096
	eventBuffer    = 64
)

// Client message types.
const (
	msgResize = "resize"
	msgScroll = "scroll"
	msgReload = "reload"
)

// clientMessage is a message sent by the browser.
//
//	{"type":"resize","width":1280,"height":720}
//	{"type":"resize","x":0,"y":64,"width":1280,"height":656,"window_width":1280,"window_height":720}
//	{"type":"scroll","offset":420}
//	{"type":"reload"}
type clientMessage struct {
	Type         string  `json:"type"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	WindowWidth  float64 `json:"window_width"`
	WindowHeight float64 `json:"window_height"`
	Offset       float64 `json:"offset"`
}

// sessionError is pushed when a client message is rejected.
type sessionError struct {
	Type    string       `json:"type"`
	Code    gerrors.Code `json:"code"`
	Message string       `json:"message"`
}

// session is one websocket connection hosting a headless view.
type session struct {
	id       string
	conn     *websocket.Conn
	provider *viewport.Static
	program  *tea.Program
	view     *galaxy.View
	logger   *log.Logger
	errs     chan sessionError
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied.
		s.logger.Warn("websocket upgrade", "error", err)
		return
	}
	defer conn.Close()

	id := uuid.NewString()
	sess := &session{
		id:       id,
		conn:     conn,
		provider: viewport.NewStatic(geometry.Size{}),
		logger:   s.logger.With("session", id),
		errs:     make(chan sessionError, 8),
	}
	if !s.register(sess) {
		return
	}
	defer s.unregister(sess)

	sess.logger.Info("session opened", "remote", r.RemoteAddr)
	err = s.run(r.Context(), sess)
	sess.logger.Info("session closed", "error", err)
}

// run hosts the session until the client disconnects or the server closes.
func (s *Server) run(parent context.Context, sess *session) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	stop := context.AfterFunc(s.ctx, cancel)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	opts := s.opts.View
	opts.Logger = sess.logger
	opts.Bus = eventbus.New[galaxy.Event]()
	events, unsubscribe := opts.Bus.Chan(eventBuffer)
	defer unsubscribe()

	sess.view = galaxy.New(ctx, s.store, sess.provider, opts)
	defer sess.view.Close()
	sess.program = tea.NewProgram(sess.view,
		tea.WithContext(ctx),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
		tea.WithoutSignalHandler(),
	)

	g.Go(func() error {
		defer cancel()
		_, err := sess.program.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		defer cancel()
		return sess.read(ctx)
	})
	g.Go(func() error {
		defer cancel()
		return sess.write(ctx, events)
	})
	g.Go(func() error {
		<-ctx.Done()
		deadline := time.Now().Add(writeTimeout)
		_ = sess.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
		_ = sess.conn.Close()
		return nil
	})
	return g.Wait()
}

// read applies client messages to the provider and notifies the view.
func (sess *session) read(ctx context.Context) error {
	sess.conn.SetReadLimit(maxMessageSize)
	for {
		_, data, err := sess.conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return err
		}

		msg, err := sess.apply(data)
		if err != nil {
			sess.reject(err)
			continue
		}
		sess.program.Send(msg)
	}
}

// apply decodes one client message and updates the provider. It returns
// the message to send to the view.
func (sess *session) apply(data []byte) (tea.Msg, error) {
	var m clientMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, gerrors.Wrap(gerrors.ErrCodeInvalidMessage, err, "malformed message")
	}

	switch m.Type {
	case msgResize:
		if err := gerrors.ValidateSize(m.Width, m.Height); err != nil {
			return nil, err
		}
		window := geometry.Size{W: m.WindowWidth, H: m.WindowHeight}
		if window.Empty() {
			window = geometry.Size{W: m.X + m.Width, H: m.Y + m.Height}
		}
		if err := gerrors.ValidateSize(window.W, window.H); err != nil {
			return nil, err
		}
		sess.provider.SetWindow(window)
		sess.provider.SetBounds(geometry.Rect{X: m.X, Y: m.Y, W: m.Width, H: m.Height})
		return galaxy.ResizeMsg{}, nil
	case msgScroll:
		if err := gerrors.ValidateDimension("offset", m.Offset); err != nil {
			return nil, err
		}
		sess.provider.SetScroll(m.Offset)
		return galaxy.ScrollMsg{}, nil
	case msgReload:
		return galaxy.ReloadMsg{}, nil
	default:
		return nil, gerrors.New(gerrors.ErrCodeInvalidMessage, "unknown message type %q", m.Type)
	}
}

func (sess *session) reject(err error) {
	sess.logger.Debug("rejected message", "error", err)
	e := sessionError{Type: "error", Code: gerrors.GetCode(err), Message: gerrors.UserMessage(err)}
	select {
	case sess.errs <- e:
	default:
	}
}

// write is the connection's only writer.
func (sess *session) write(ctx context.Context, events <-chan galaxy.Event) error {
	for {
		var v any
		select {
		case <-ctx.Done():
			return nil
		case e := <-events:
			v = e
		case e := <-sess.errs:
			v = e
		}
		_ = sess.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := sess.conn.WriteJSON(v); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
	}
}
