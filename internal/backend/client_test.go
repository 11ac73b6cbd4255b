package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fortune-auction/gateway/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second)
}

func TestValueListUnwrapsBothShapes(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    []int
	}{
		{name: "wrapped", payload: `{"$values": [1, 2, 3]}`, want: []int{1, 2, 3}},
		{name: "bare_array", payload: `[4, 5]`, want: []int{4, 5}},
		{name: "null", payload: `null`, want: nil},
		{name: "wrapped_empty", payload: `{"$values": []}`, want: []int{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got valueList[int]
			require.NoError(t, json.Unmarshal([]byte(tc.payload), &got))
			assert.Equal(t, tc.want, got.Values)
		})
	}
}

func TestVerifiedJewelryTagsSubtypes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/Jewelries/GetVerified", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"jewelrySilver": {"$values": [{"jewelrySilverId": 1, "name": "s"}]},
			"jewelryGold": {"$values": [{"jewelryGoldId": 2, "name": "g"}]},
			"jewelryGoldDiamond": [{"jewelryGolddiaId": 3, "name": "d"}]
		}`))
	})

	silver, gold, goldDia, err := client.VerifiedJewelry(context.Background())
	require.NoError(t, err)
	require.Len(t, silver, 1)
	require.Len(t, gold, 1)
	require.Len(t, goldDia, 1)
	assert.Equal(t, model.SubtypeSilver, silver[0].Subtype)
	assert.Equal(t, model.SubtypeGold, gold[0].Subtype)
	assert.Equal(t, model.SubtypeGoldDiamond, goldDia[0].Subtype)
}

func TestJewelryByIDPaths(t *testing.T) {
	tests := []struct {
		subtype  model.Subtype
		wantPath string
	}{
		{subtype: model.SubtypeGold, wantPath: "/api/JewelryGold/GetById/42"},
		{subtype: model.SubtypeSilver, wantPath: "/api/JewelrySilver/GetById/42"},
		{subtype: model.SubtypeGoldDiamond, wantPath: "/api/JewelryGoldDia/GetById/42"},
	}

	for _, tc := range tests {
		t.Run(string(tc.subtype), func(t *testing.T) {
			var gotPath string
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				w.Write([]byte(`{"name": "piece", "jewelryImg": "img/piece.jpg"}`))
			})

			item, err := client.JewelryByID(context.Background(), tc.subtype, 42)
			require.NoError(t, err)
			assert.Equal(t, tc.wantPath, gotPath)
			// detail payload carries no id, the requested subtype sticks
			assert.Equal(t, tc.subtype, item.Subtype)
			assert.Equal(t, "piece", item.Name)
		})
	}
}

func TestJewelryByIDUnknownSubtype(t *testing.T) {
	client := New("http://localhost:0", time.Second)
	_, err := client.JewelryByID(context.Background(), model.Subtype("Bronze"), 1)
	require.Error(t, err)
}

func TestBidRecordsQueryParams(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/BidRecord/GetBidRecordByAccountIdAndBidId", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("accountId"))
		assert.Equal(t, "13", r.URL.Query().Get("bidId"))
		w.Write([]byte(`{"$values": [{"id": 1, "bidStep": 10, "bidAmount": 110}]}`))
	})

	records, err := client.BidRecords(context.Background(), 7, 13)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 110.0, records[0].BidAmount)
}

func TestStatusErrorOnRejection(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "schedule conflict", http.StatusConflict)
	})

	err := client.CreatePayment(context.Background(), 1, 2)
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusConflict, statusErr.Code)
	assert.True(t, statusErr.IsClientError())
	assert.Contains(t, statusErr.Body, "schedule conflict")
}

func TestLoginDecodesAccount(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "a@b.c", payload["accountEmail"])
		assert.Equal(t, "secret", payload["accountPassword"])
		w.Write([]byte(`{"accountId": 9, "accountName": "Ann", "accountEmail": "a@b.c", "roleId": 2}`))
	})

	user, err := client.Login(context.Background(), "a@b.c", "secret")
	require.NoError(t, err)
	assert.Equal(t, 9, user.AccountID)
	assert.Equal(t, model.RoleMember, user.Role)
}

func TestAuctionTimestampsDecode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"auctionId": 5, "jewelryGoldId": 3, "starttime": "2026-09-05T10:00:00", "endtime": "2026-09-05T10:45:00"}`))
	})

	auction, err := client.AuctionByID(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, auction.GoldID)
	assert.Equal(t, 45*time.Minute, auction.EndTime.Sub(auction.StartTime.Time))
}
