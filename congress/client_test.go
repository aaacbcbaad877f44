package congress

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/jmcnair/voterhub/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return New(&config.CongressConfig{
		URL:    server.URL,
		APIKey: "test-api-key",
	})
}

func TestClient_Members(t *testing.T) {
	tests := []struct {
		name           string
		serverResponse func(w http.ResponseWriter, r *http.Request)
		wantErr        error
		wantMembers    int
	}{
		{
			name: "successful roster",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/116/house/members.json", r.URL.Path)
				assert.Equal(t, "test-api-key", r.Header.Get("X-API-Key"))

				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(map[string]any{
					"results": []map[string]any{{
						"congress": "116",
						"chamber":  "House",
						"members": []Member{
							{ID: "K000388", FirstName: "Trent", LastName: "Kelly"},
							{ID: "A000374", FirstName: "Ralph", LastName: "Abraham"},
						},
					}},
				})
			},
			wantMembers: 2,
		},
		{
			name: "missing members key",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]any{
					"results": []map[string]any{{"congress": "116"}},
				})
			},
			wantErr: ErrMalformedResponse,
		},
		{
			name: "empty results",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]any{"results": []any{}})
			},
			wantErr: ErrMalformedResponse,
		},
		{
			name: "upstream client error",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			},
			wantErr: ErrUpstream,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.serverResponse)

			members, err := client.Members(context.Background(), ChamberHouse, 116)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, members, tt.wantMembers)
		})
	}
}

func TestClient_MemberVotes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/members/K000388/votes.json", r.URL.Path)
		assert.Equal(t, "20", r.URL.Query().Get("offset"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))

		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{{
				"offset": 20,
				"votes": []Vote{
					{Question: "On Passage", Position: "Yes"},
				},
			}},
		})
	})

	page, err := client.MemberVotes(context.Background(), "K000388", 20, 20)
	require.NoError(t, err)
	assert.Equal(t, 20, page.Offset)
	require.Len(t, page.Votes, 1)
	assert.Equal(t, "On Passage", page.Votes[0].Question)
}

func TestClient_MemberProfile(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/members/K000388.json", r.URL.Path)

		json.NewEncoder(w).Encode(map[string]any{
			"results": []MemberProfile{
				{ID: "K000388", FirstName: "Trent", LastName: "Kelly", InOffice: true},
			},
		})
	})

	profile, err := client.MemberProfile(context.Background(), "K000388")
	require.NoError(t, err)
	assert.Equal(t, "Trent", profile.FirstName)
	assert.True(t, profile.InOffice)
}

func TestClient_SearchBills(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bills/search.json", r.URL.Path)
		assert.Equal(t, "school lunch", r.URL.Query().Get("query"))
		assert.Equal(t, "0", r.URL.Query().Get("offset"))

		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{{
				"num_results": 1,
				"offset":      0,
				"bills": []Bill{
					{BillID: "hr123-116", Title: "School Lunch Act"},
				},
			}},
		})
	})

	page, err := client.SearchBills(context.Background(), "school lunch", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.NumResults)
	require.Len(t, page.Bills, 1)
	assert.Equal(t, "hr123-116", page.Bills[0].BillID)
}

func TestClient_BillOrNomination(t *testing.T) {
	tests := []struct {
		name           string
		itemID         string
		serverResponse func(w http.ResponseWriter, r *http.Request)
		wantErr        bool
		wantBill       bool
		wantNomination bool
	}{
		{
			name:   "bill id dispatches to the bills endpoint",
			itemID: "hr123",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/116/bills/hr123.json", r.URL.Path)
				json.NewEncoder(w).Encode(map[string]any{
					"results": []Bill{{BillID: "hr123-116", Title: "School Lunch Act"}},
				})
			},
			wantBill: true,
		},
		{
			name:   "nomination id dispatches to the nominations endpoint",
			itemID: "PN123",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/116/nominations/PN123.json", r.URL.Path)
				json.NewEncoder(w).Encode(map[string]any{
					"results": []Nomination{{NominationID: "PN123-116", Description: "A nominee"}},
				})
			},
			wantNomination: true,
		},
		{
			name:   "lowercase nomination prefix",
			itemID: "pn123",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/116/nominations/pn123.json", r.URL.Path)
				json.NewEncoder(w).Encode(map[string]any{
					"results": []Nomination{{NominationID: "PN123-116"}},
				})
			},
			wantNomination: true,
		},
		{
			name:   "any failure collapses to not found",
			itemID: "hr999",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			wantErr: true,
		},
		{
			name:   "parse failure collapses to not found",
			itemID: "hr123",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json")) //nolint:errcheck
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.serverResponse)

			detail, err := client.BillOrNomination(context.Background(), 116, tt.itemID)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBill, detail.Bill != nil)
			assert.Equal(t, tt.wantNomination, detail.Nomination != nil)
		})
	}
}

func TestIsNomination(t *testing.T) {
	assert.True(t, IsNomination("PN123"))
	assert.True(t, IsNomination("pn123"))
	assert.False(t, IsNomination("hr123"))
	assert.False(t, IsNomination("s456"))
	assert.False(t, IsNomination(""))
}

func TestClient_Retry(t *testing.T) {
	t.Run("retries on server error", func(t *testing.T) {
		var calls atomic.Int32
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			json.NewEncoder(w).Encode(map[string]any{
				"results": []map[string]any{{"members": []Member{{ID: "K000388"}}}},
			})
		})

		members, err := client.Members(context.Background(), ChamberHouse, 116)
		require.NoError(t, err)
		assert.Len(t, members, 1)
		assert.EqualValues(t, 2, calls.Load())
	})

	t.Run("does not retry on client error", func(t *testing.T) {
		var calls atomic.Int32
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusUnauthorized)
		})

		_, err := client.Members(context.Background(), ChamberHouse, 116)
		assert.ErrorIs(t, err, ErrUpstream)
		assert.EqualValues(t, 1, calls.Load())
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		var calls atomic.Int32
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.Members(context.Background(), ChamberHouse, 116)
		assert.ErrorIs(t, err, ErrUpstream)
		assert.EqualValues(t, maxRetries+1, calls.Load())
	})
}
