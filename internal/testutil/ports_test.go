package testutil

import (
	"net"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRandomPort(t *testing.T) {
	port := GetRandomPort(t)
	assert.Greater(t, port, 0)
	assert.Less(t, port, 65536)
}

func TestGetRandomPortUnique(t *testing.T) {
	ports := make(map[int]bool)
	for range 10 {
		port := GetRandomPort(t)
		assert.False(t, ports[port], "Port %d was already used", port)
		ports[port] = true
	}
}

func TestGetRandomPortConcurrency(t *testing.T) {
	var wg sync.WaitGroup
	portChan := make(chan int, 20)

	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			portChan <- GetRandomPort(t)
		}()
	}

	wg.Wait()
	close(portChan)

	seen := make(map[int]bool)
	for port := range portChan {
		assert.False(t, seen[port], "Port %d was handed out twice", port)
		seen[port] = true
	}
	assert.Len(t, seen, 20)
}

func TestGetRandomListenAddress(t *testing.T) {
	addr := GetRandomListenAddress(t)

	host, port, err := net.SplitHostPort(addr)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", host)

	p, err := strconv.Atoi(port)
	require.NoError(t, err)
	assert.Greater(t, p, 0)

	l, err := net.Listen("tcp", addr)
	require.NoError(t, err, "address should be bindable")
	assert.NoError(t, l.Close())
}
