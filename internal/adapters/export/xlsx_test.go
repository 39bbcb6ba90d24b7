package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"station-search-service/internal/domain"
)

func TestWriteStations(t *testing.T) {
	stations := []domain.Station{
		{
			ID:             "ME000001",
			Name:           "강남구청 충전소",
			Address:        "서울특별시 강남구 학동로 426",
			ChargerTypes:   []string{"DC콤보"},
			OperatingHours: "24시간 이용가능",
			DistanceKm:     1.234,
			Status:         "충전가능",
			OperatorName:   "환경부",
		},
		{
			ID:             "ME000002",
			Name:           "역삼 주차장",
			Address:        "서울특별시 강남구 역삼동",
			ChargerTypes:   []string{"DC차데모", "AC3상"},
			OperatingHours: "09:00~18:00",
			DistanceKm:     2.5,
			Status:         "충전중",
			OperatorName:   "한국전력",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteStations(&buf, stations))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	// The placeholder default sheet is gone.
	assert.Equal(t, []string{sheetName}, f.GetSheetList())

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "충전소 ID", rows[0][0])
	assert.Equal(t, "거리(km)", rows[0][5])

	assert.Equal(t, "ME000001", rows[1][0])
	assert.Equal(t, "강남구청 충전소", rows[1][1])
	assert.Equal(t, "DC콤보", rows[1][3])
	assert.Equal(t, "충전가능", rows[1][6])

	// Multiple connector types join into one cell.
	assert.Equal(t, "DC차데모, AC3상", rows[2][3])
}

func TestWriteStationsEmptyList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStations(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "충전소 ID", rows[0][0])
}
