package client

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_PageShowing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		page     Page[int]
		wantText string
		hasPrev  bool
		hasNext  bool
	}{
		{
			name:     "first page of three",
			page:     Page[int]{Number: 0, Size: 9, TotalPages: 3, TotalElements: 27},
			wantText: "Showing 1 to 9 of 27",
			hasPrev:  false,
			hasNext:  true,
		},
		{
			name:     "middle page",
			page:     Page[int]{Number: 1, Size: 9, TotalPages: 3, TotalElements: 27},
			wantText: "Showing 10 to 18 of 27",
			hasPrev:  true,
			hasNext:  true,
		},
		{
			name:     "last page clamps to total",
			page:     Page[int]{Number: 2, Size: 10, TotalPages: 3, TotalElements: 27, Last: true},
			wantText: "Showing 21 to 27 of 27",
			hasPrev:  true,
			hasNext:  false,
		},
		{
			name:     "empty result",
			page:     Page[int]{Number: 0, Size: 9, TotalPages: 0, TotalElements: 0, Last: true},
			wantText: "Showing 0 to 0 of 0",
			hasPrev:  false,
			hasNext:  false,
		},
		{
			name:     "single short page",
			page:     Page[int]{Number: 0, Size: 9, TotalPages: 1, TotalElements: 4, Last: true},
			wantText: "Showing 1 to 4 of 4",
			hasPrev:  false,
			hasNext:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.wantText, tt.page.ShowingText())
			require.Equal(t, tt.hasPrev, tt.page.HasPrev(), "prev")
			require.Equal(t, tt.hasNext, tt.page.HasNext(), "next")
		})
	}
}
