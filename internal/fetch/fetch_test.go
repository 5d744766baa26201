package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body><main>채용 공고 본문</main></body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "채용 공고 본문")
}

func TestURLRejectsInvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not a url", nil)
	require.Error(t, err)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "not a url", fetchErr.URL)
}

func TestURLNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	assert.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
}

func TestExtractPostingText(t *testing.T) {
	html := `<html><body>
		<nav>메뉴</nav>
		<main>
			<h1>백엔드 개발자 채용</h1>
			<p>경력 3년 이상</p>
		</main>
		<footer>푸터</footer>
	</body></html>`

	text, err := ExtractPostingText(html, genericSelectors)
	require.NoError(t, err)
	assert.Contains(t, text, "백엔드 개발자 채용")
	assert.Contains(t, text, "경력 3년 이상")
	assert.NotContains(t, text, "메뉴")
	assert.NotContains(t, text, "푸터")
}

func TestExtractPostingTextFallsBackToBody(t *testing.T) {
	text, err := ExtractPostingText("<html><body><div>본문</div></body></html>", []string{".missing"})
	require.NoError(t, err)
	assert.Contains(t, text, "본문")
}

func TestNeedsBrowser(t *testing.T) {
	assert.True(t, NeedsBrowser("   "))
	assert.True(t, NeedsBrowser("too short"))
	assert.False(t, NeedsBrowser(strings.Repeat("충분히 긴 공고 본문 ", 50)))
}

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url  string
		want Platform
	}{
		{"https://www.wanted.co.kr/wd/12345", PlatformWanted},
		{"https://www.saramin.co.kr/zf_user/jobs/view?rec_idx=1", PlatformSaramin},
		{"https://www.jobkorea.co.kr/Recruit/GI_Read/1", PlatformJobKorea},
		{"https://example.com/job/1", PlatformUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectPlatform(tt.url), tt.url)
	}
}

func TestSelectorsForWantedComeFirst(t *testing.T) {
	selectors := SelectorsFor("https://www.wanted.co.kr/wd/12345")
	require.NotEmpty(t, selectors)
	assert.Equal(t, "[data-testid='JobDescription']", selectors[0])
	assert.Contains(t, selectors, "main")
}
