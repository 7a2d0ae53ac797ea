package app

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kafkaBridge/internal/pkg/logger"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := strings.TrimSpace(b.buf.String())
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o600)
}

func freePort(t *testing.T) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := lis.Addr().(*net.TCPAddr).Port
	require.NoError(t, lis.Close())
	return strconv.Itoa(port)
}

var locationAttr = regexp.MustCompile(` location=(\S+)`)

// locationsOf возвращает значения location из строк лога с сообщением msg.
func locationsOf(lines []string, msg string) []string {
	var out []string
	for _, l := range lines {
		if !strings.Contains(l, `msg="`+msg+`"`) {
			continue
		}
		if m := locationAttr.FindStringSubmatch(l); m != nil {
			out = append(out, m[1])
		}
	}
	return out
}

// startApp запускает приложение на встроенном брокере и ждёт готовности HTTP.
func startApp(t *testing.T, role string) (baseURL string, sink *syncBuffer, stop func() error) {
	t.Helper()

	cfg := DefaultConfig()
	cfg.Role = role
	cfg.Server.Port = freePort(t)
	cfg.Server.ShutdownTimeout = time.Second

	sink = &syncBuffer{}
	log := logger.NewWithWriter(sink, "info")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- New(cfg).run(ctx, log) }()

	baseURL = "http://" + cfg.Server.Addr()
	require.Eventually(t, func() bool {
		resp, err := http.Get(baseURL + "/liveness")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	stopped := false
	stop = func() error {
		if stopped {
			return nil
		}
		stopped = true
		cancel()
		select {
		case err := <-done:
			return err
		case <-time.After(5 * time.Second):
			t.Fatal("app did not stop")
			return nil
		}
	}
	t.Cleanup(func() { _ = stop() })
	return baseURL, sink, stop
}

func post(t *testing.T, url, body string) (int, string) {
	t.Helper()
	resp, err := http.Post(url, "text/plain", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

func TestApp_RoundTrip(t *testing.T) {
	baseURL, sink, stop := startApp(t, RoleAll)

	code, body := post(t, baseURL+"/api/v1/send/location", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Updated location :true", body)

	var published []string
	require.Eventually(t, func() bool {
		published = locationsOf(sink.lines(), "location published")
		return len(published) == 1 && len(locationsOf(sink.lines(), "message listener received location")) == 1
	}, 5*time.Second, 10*time.Millisecond)

	received := locationsOf(sink.lines(), "message listener received location")
	assert.Equal(t, published, received)
	assert.Equal(t, published, locationsOf(sink.lines(), "received request to update location"))

	require.NoError(t, stop())
}

func TestApp_ConcurrentSends(t *testing.T) {
	baseURL, sink, stop := startApp(t, RoleAll)

	const n = 100
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code, body := post(t, baseURL+"/api/v1/send/location", "")
			assert.Equal(t, http.StatusOK, code)
			assert.Equal(t, "Updated location :true", body)
		}()
	}
	wg.Wait()

	require.Eventually(t, func() bool {
		return len(locationsOf(sink.lines(), "message listener received location")) == n
	}, 5*time.Second, 10*time.Millisecond)

	assert.ElementsMatch(t,
		locationsOf(sink.lines(), "location published"),
		locationsOf(sink.lines(), "message listener received location"),
	)
	require.NoError(t, stop())
}

func TestApp_ReceiverEndpoint(t *testing.T) {
	baseURL, sink, _ := startApp(t, RoleAll)

	code, _ := post(t, baseURL+"/location", "12.34,56.78")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, []string{"12.34,56.78"}, locationsOf(sink.lines(), "receiver endpoint received location"))

	code, _ = post(t, baseURL+"/location", "not-a-location")
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = post(t, baseURL+"/location", "1,2"+strings.Repeat(" ", 1100)+"garbage,more,commas")
	assert.Equal(t, http.StatusRequestEntityTooLarge, code)
	assert.Equal(t, []string{"12.34,56.78"}, locationsOf(sink.lines(), "receiver endpoint received location"))
}

func TestApp_SenderRole(t *testing.T) {
	baseURL, sink, _ := startApp(t, RoleSender)

	code, _ := post(t, baseURL+"/api/v1/send/location", "")
	assert.Equal(t, http.StatusOK, code)

	code, _ = post(t, baseURL+"/location", "1,2")
	assert.Equal(t, http.StatusNotFound, code)

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, locationsOf(sink.lines(), "message listener received location"))
}

func TestApp_ReceiverRole(t *testing.T) {
	baseURL, _, _ := startApp(t, RoleReceiver)

	code, _ := post(t, baseURL+"/api/v1/send/location", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestApp_BusyPortFails(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()

	cfg := DefaultConfig()
	cfg.Server.Port = strconv.Itoa(lis.Addr().(*net.TCPAddr).Port)

	err = New(cfg).run(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http")
}

func TestOpenBroker(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("memory", func(t *testing.T) {
		cfg := DefaultConfig()
		b, err := openBroker(context.Background(), cfg, log)
		require.NoError(t, err)

		require.NoError(t, b.pinger.Ping(context.Background()))
		require.NoError(t, b.publisher.Publish(context.Background(), cfg.Broker.Topic, []byte("1,2")))

		_, err = b.consumer()
		require.NoError(t, err)

		require.NoError(t, b.Close())
		assert.Error(t, b.publisher.Publish(context.Background(), cfg.Broker.Topic, []byte("1,2")))
		assert.Error(t, b.pinger.Ping(context.Background()))
	})

	t.Run("kafka без подключения", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Broker.Driver = DriverKafka
		b, err := openBroker(context.Background(), cfg, log)
		require.NoError(t, err)
		assert.NotNil(t, b.publisher)
		require.NoError(t, b.Close())
	})

	t.Run("неизвестный драйвер", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Broker.Driver = "nats"
		_, err := openBroker(context.Background(), cfg, log)
		require.Error(t, err)
	})
}
