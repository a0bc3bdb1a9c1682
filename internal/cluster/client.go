package cluster

import (
	"bufio"
	"context"
	"encoding/json"
	"net"
)

// SendRebuild manda la tarea de un shard a un sim node y espera su respuesta.
func SendRebuild(ctx context.Context, addr string, task *RebuildTask) (*RebuildResponse, error) {
	d := net.Dialer{}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	enc := json.NewEncoder(conn)
	if err := enc.Encode(task); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bufio.NewReader(conn))
	var resp RebuildResponse
	if err := dec.Decode(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
