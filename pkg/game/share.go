package game

import (
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"

	"github.com/decker502/xmasreel/pkg/config"
	"github.com/pkg/browser"
)

// kanjiNumerals 0..10 的汉字数字
var kanjiNumerals = []string{"零", "一", "二", "三", "四", "五", "六", "七", "八", "九", "十"}

// ToKanjiNumeral 将 0..10 转换为汉字数字，超出范围时返回阿拉伯数字
func ToKanjiNumeral(n int) string {
	if n >= 0 && n < len(kanjiNumerals) {
		return kanjiNumerals[n]
	}
	return strconv.Itoa(n)
}

// ShareOpener 打开外部发帖窗口
type ShareOpener interface {
	Open(rawURL string) error
}

// BrowserOpener 使用系统默认浏览器打开链接
type BrowserOpener struct{}

// Open 实现 ShareOpener
func (BrowserOpener) Open(rawURL string) error {
	if err := browser.OpenURL(rawURL); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}

// LogOpener 只记录日志（移动端或无浏览器环境的降级方案）
type LogOpener struct{}

// Open 实现 ShareOpener
func (LogOpener) Open(rawURL string) error {
	log.Printf("[Share] 无法打开浏览器，分享链接: %s", rawURL)
	return nil
}

// BuildShareText 生成分享文案
//
// 参数：
//   - share: 分享配置（模板、话题、站点地址）
//   - symbol: 最近一次停下的符号编号，渲染为汉字数字
//   - maxScore: 最高连胜记录
func BuildShareText(share config.ShareConfig, symbol, maxScore int) string {
	replacer := strings.NewReplacer(
		config.PlaceholderCount, ToKanjiNumeral(symbol),
		config.PlaceholderMaxScore, strconv.Itoa(maxScore),
		config.PlaceholderHashtag, share.Hashtag,
		config.PlaceholderSiteURL, share.SiteURL,
	)
	return replacer.Replace(share.Template)
}

// BuildShareURL 生成发帖页面地址（文案作为 text 参数）
func BuildShareURL(share config.ShareConfig, text string) (string, error) {
	u, err := url.Parse(share.IntentURL)
	if err != nil {
		return "", fmt.Errorf("invalid share intent URL %q: %w", share.IntentURL, err)
	}

	query := u.Query()
	query.Set("text", text)
	u.RawQuery = query.Encode()
	return u.String(), nil
}
