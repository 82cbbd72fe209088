package commands

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/Mshel/sshnake/internal/config"
	"github.com/Mshel/sshnake/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve a private game to every SSH session",
	RunE:  runServe,
}

var (
	host                string
	port                int
	hostKeyPath         string
	maxConnectionsPerIP int
)

func init() {
	serveCmd.Flags().StringVar(&host, "host", config.Host, "address to listen on")
	serveCmd.Flags().IntVar(&port, "port", config.Port, "port to listen on")
	serveCmd.Flags().StringVar(&hostKeyPath, "host-key-path", config.HostKeyPath, "ssh host key, generated when missing")
	serveCmd.Flags().IntVar(&maxConnectionsPerIP, "max-conns-per-ip", config.MaxConnectionsPerIP, "concurrent sessions allowed per client IP")
}

// connectionLimiter caps concurrent sessions per client IP.
type connectionLimiter struct {
	mu     sync.Mutex
	counts map[string]int
	limit  int
}

func newConnectionLimiter(limit int) *connectionLimiter {
	return &connectionLimiter{
		counts: make(map[string]int),
		limit:  limit,
	}
}

// tryAcquire takes a slot for ip and returns the count it saw before.
func (l *connectionLimiter) tryAcquire(ip string) (int, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	current := l.counts[ip]
	if current >= l.limit {
		return current, false
	}
	l.counts[ip] = current + 1
	return current, true
}

func (l *connectionLimiter) release(ip string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.counts[ip]--
	if l.counts[ip] <= 0 {
		delete(l.counts, ip)
		return 0
	}
	return l.counts[ip]
}

func (l *connectionLimiter) middleware(next ssh.Handler) ssh.Handler {
	return func(s ssh.Session) {
		ip := getIP(s)

		currentCount, ok := l.tryAcquire(ip)
		if !ok {
			log.Warn("Connection denied: IP limit exceeded", "ip", ip, "attempted_count", currentCount+1, "current_limit", l.limit)
			errorMessage := fmt.Sprintf("Too many active connections from your IP (%d/%d). Please try again later.\r\n", currentCount+1, l.limit)
			s.Write([]byte(errorMessage))
			s.Close()
			return
		}

		log.Info("Connection accepted", "ip", ip, "current_count", currentCount+1, "limit", l.limit)
		next(s)
		log.Info("Connection closed and counter decremented", "ip", ip, "count_after", l.release(ip))
	}
}

func getIP(s ssh.Session) string {
	if addr, ok := s.RemoteAddr().(*net.TCPAddr); ok {
		return addr.IP.String()
	}
	return s.RemoteAddr().String()
}

// viewHandler gives every session its own controller and so its own game.
func viewHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sshSession.Pty()
	controllerModel := ui.NewControllerModel(uiOptions(pty.Window.Width, pty.Window.Height))

	return controllerModel, []tea.ProgramOption{tea.WithAltScreen()}
}

func runServe(c *cobra.Command, args []string) error {
	limiter := newConnectionLimiter(maxConnectionsPerIP)
	address := net.JoinHostPort(host, strconv.Itoa(port))

	sshServer, err := wish.NewServer(
		wish.WithAddress(address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(viewHandler),
			activeterm.Middleware(),
			logging.Middleware(),
			limiter.middleware,
		),
	)
	if err != nil {
		return errors.Wrap(err, "creating ssh server")
	}

	serverDoneChannel := make(chan os.Signal, 1)
	signal.Notify(serverDoneChannel, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	log.Info("Starting SSH server", "host", host, "port", port, "board_width", boardWidth, "board_height", boardHeight)

	serveErr := make(chan error, 1)
	go func() {
		if err := sshServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-serverDoneChannel:
	case err, ok := <-serveErr:
		if ok {
			return errors.Wrap(err, "serving ssh")
		}
	}

	log.Info("Stopping SSH server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := sshServer.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return errors.Wrap(err, "stopping ssh server")
	}
	return nil
}
