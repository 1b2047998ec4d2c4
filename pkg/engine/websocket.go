package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	luminaerrors "github.com/luminalabs/lumina-mcp/pkg/errors"
	"github.com/luminalabs/lumina-mcp/pkg/hypercube"
	"github.com/luminalabs/lumina-mcp/pkg/observability"
)

// WSQuerier implements [Querier] over the engine's WebSocket JSON-RPC
// protocol. A fresh session is dialed per fetch and closed when the
// page has been read; no session state survives a call.
type WSQuerier struct {
	engineURL string
	apiKey    string
	dialer    *websocket.Dialer
}

// NewWSQuerier creates a querier for the given engine endpoint, e.g.
// "wss://acme.lumina.cloud/engine".
func NewWSQuerier(engineURL, apiKey string) *WSQuerier {
	return &WSQuerier{
		engineURL: strings.TrimSuffix(engineURL, "/"),
		apiKey:    apiKey,
		dialer:    websocket.DefaultDialer,
	}
}

// FetchHypercube opens the app document, creates a transient cube
// object, and reads one page of cells. Rows are silently capped at
// [MaxFetchRows] and only the first requested dimension is evaluated.
func (q *WSQuerier) FetchHypercube(ctx context.Context, appID string, spec CubeSpec) (matrix hypercube.Matrix, err error) {
	spec = clampSpec(spec)

	observability.Engine().OnQueryStart(ctx, appID)
	start := time.Now()
	defer func() {
		observability.Engine().OnQueryComplete(ctx, appID, len(matrix), time.Since(start), err)
	}()

	sess, err := q.dial(ctx, appID)
	if err != nil {
		return nil, luminaerrors.Wrap(luminaerrors.ErrCodeEngineSession, err, "connect to engine for app %s", appID)
	}
	defer sess.close()

	docHandle, err := sess.openDoc(appID)
	if err != nil {
		return nil, luminaerrors.Wrap(luminaerrors.ErrCodeEngineSession, err, "open app %s", appID)
	}

	objHandle, err := sess.createCube(docHandle, spec)
	if err != nil {
		return nil, luminaerrors.Wrap(luminaerrors.ErrCodeEngineQuery, err, "create cube")
	}

	matrix, err = sess.readPage(objHandle, spec.MaxRows, 1+len(spec.Measures))
	if err != nil {
		return nil, luminaerrors.Wrap(luminaerrors.ErrCodeEngineQuery, err, "fetch cube page")
	}
	return matrix, nil
}

// session is one WebSocket connection with JSON-RPC request sequencing.
type session struct {
	conn   *websocket.Conn
	nextID int
}

func (q *WSQuerier) dial(ctx context.Context, appID string) (*session, error) {
	header := http.Header{"Authorization": {"Bearer " + q.apiKey}}
	url := fmt.Sprintf("%s/app/%s", q.engineURL, appID)

	conn, resp, err := q.dialer.DialContext(ctx, url, header)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("dial %s: status %d: %w", url, resp.StatusCode, err)
		}
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	return &session{conn: conn}, nil
}

func (s *session) close() {
	_ = s.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	_ = s.conn.Close()
}

// rpcRequest and rpcResponse are the JSON-RPC envelope of the engine
// protocol. Handles address server-side objects between calls.
type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Handle  int    `json:"handle"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

type rpcResponse struct {
	ID     int             `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// call sends one request and waits for its reply, skipping unsolicited
// change notifications the engine pushes between replies.
func (s *session) call(handle int, method string, params, result any) error {
	s.nextID++
	req := rpcRequest{JSONRPC: "2.0", ID: s.nextID, Handle: handle, Method: method, Params: params}
	if err := s.conn.WriteJSON(req); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	for {
		var resp rpcResponse
		if err := s.conn.ReadJSON(&resp); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
		if resp.ID != s.nextID {
			continue // push notification, not our reply
		}
		if resp.Error != nil {
			return fmt.Errorf("%s: engine error %d: %s", method, resp.Error.Code, resp.Error.Message)
		}
		if result != nil {
			return json.Unmarshal(resp.Result, result)
		}
		return nil
	}
}

func (s *session) openDoc(appID string) (int, error) {
	var result struct {
		Return struct {
			Handle int `json:"qHandle"`
		} `json:"qReturn"`
	}
	if err := s.call(-1, "OpenDoc", []any{appID}, &result); err != nil {
		return 0, err
	}
	return result.Return.Handle, nil
}

func (s *session) createCube(docHandle int, spec CubeSpec) (int, error) {
	type nxDimension struct {
		Def struct {
			FieldDefs []string `json:"qFieldDefs"`
		} `json:"qDef"`
	}
	type nxMeasure struct {
		Def struct {
			Expression string `json:"qDef"`
		} `json:"qDef"`
	}

	var dims []nxDimension
	for _, d := range spec.Dimensions {
		var nd nxDimension
		nd.Def.FieldDefs = []string{d}
		dims = append(dims, nd)
	}
	var measures []nxMeasure
	for _, m := range spec.Measures {
		var nm nxMeasure
		nm.Def.Expression = m
		measures = append(measures, nm)
	}

	params := map[string]any{
		"qProp": map[string]any{
			"qInfo": map[string]any{"qType": "transient-cube"},
			"qHyperCubeDef": map[string]any{
				"qDimensions": dims,
				"qMeasures":   measures,
				"qInitialDataFetch": []map[string]int{{
					"qTop": 0, "qLeft": 0,
					"qHeight": spec.MaxRows,
					"qWidth":  1 + len(spec.Measures),
				}},
			},
		},
	}

	var result struct {
		Return struct {
			Handle int `json:"qHandle"`
		} `json:"qReturn"`
	}
	if err := s.call(docHandle, "CreateSessionObject", params, &result); err != nil {
		return 0, err
	}
	return result.Return.Handle, nil
}

// wireCell is the engine's cell shape; qNum is absent for non-numeric
// cells rather than NaN-encoded.
type wireCell struct {
	Num  *float64 `json:"qNum,omitempty"`
	Text string   `json:"qText,omitempty"`
}

func (s *session) readPage(objHandle, maxRows, width int) (hypercube.Matrix, error) {
	var layout struct {
		Layout struct {
			HyperCube struct {
				DataPages []struct {
					Matrix [][]wireCell `json:"qMatrix"`
				} `json:"qDataPages"`
			} `json:"qHyperCube"`
		} `json:"qLayout"`
	}
	if err := s.call(objHandle, "GetLayout", map[string]any{}, &layout); err != nil {
		return nil, err
	}

	pages := layout.Layout.HyperCube.DataPages
	if len(pages) == 0 {
		return nil, nil
	}

	rows := pages[0].Matrix
	if len(rows) > maxRows {
		rows = rows[:maxRows]
	}

	out := make(hypercube.Matrix, len(rows))
	for i, row := range rows {
		if len(row) > width {
			row = row[:width]
		}
		cells := make([]hypercube.Cell, len(row))
		for j, c := range row {
			cells[j] = hypercube.Cell{Num: c.Num, Text: c.Text}
		}
		out[i] = cells
	}
	return out, nil
}
