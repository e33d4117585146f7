package settings

import (
	errs "errors"

	"gorm.io/gorm"
)

// UserInfo is the public site-identity view.
type UserInfo struct {
	Avatar string `json:"userAvatar"`
	Talk   string `json:"userTalk"`
	Author string `json:"blogAuthor"`
	Title  string `json:"blogTitle"`
	ICP    string `json:"blogIcp"`
}

var userInfoKeys = []struct {
	key string
	ptr func(*UserInfo) *string
}{
	{"avatar", func(u *UserInfo) *string { return &u.Avatar }},
	{"talk", func(u *UserInfo) *string { return &u.Talk }},
	{"author", func(u *UserInfo) *string { return &u.Author }},
	{"blog_title", func(u *UserInfo) *string { return &u.Title }},
	{"icp", func(u *UserInfo) *string { return &u.ICP }},
}

func LoadUserInfo(db *gorm.DB) (UserInfo, error) {
	vals, err := Load(db)
	if err != nil {
		return UserInfo{}, err
	}
	var info UserInfo
	for _, f := range userInfoKeys {
		*f.ptr(&info) = vals[f.key]
	}
	return info, nil
}

// SocialInfo is the public social-links view. It reads and writes the legacy
// short keys; the admin WebSettings view mirrors writes into them.
type SocialInfo struct {
	Github   string `json:"socialGithub"`
	QQ       string `json:"socialQQ"`
	Wechat   string `json:"socialWechat"`
	Bilibili string `json:"socialBilibili"`
	Email    string `json:"socialEmail"`
	Netease  string `json:"socialNeteaseCloud"`
}

var socialInfoKeys = []struct {
	key string
	ptr func(*SocialInfo) *string
}{
	{"github", func(s *SocialInfo) *string { return &s.Github }},
	{"qq", func(s *SocialInfo) *string { return &s.QQ }},
	{"wechat", func(s *SocialInfo) *string { return &s.Wechat }},
	{"bilibili", func(s *SocialInfo) *string { return &s.Bilibili }},
	{"email", func(s *SocialInfo) *string { return &s.Email }},
	{"socialNeteaseCloud", func(s *SocialInfo) *string { return &s.Netease }},
}

func LoadSocialInfo(db *gorm.DB) (SocialInfo, error) {
	vals, err := Load(db)
	if err != nil {
		return SocialInfo{}, err
	}
	var info SocialInfo
	for _, f := range socialInfoKeys {
		*f.ptr(&info) = vals[f.key]
	}
	return info, nil
}

// ApplySocialInfo writes all six social keys. Individual upserts are
// independent, a failure stops the loop and surfaces to the caller.
func ApplySocialInfo(db *gorm.DB, info SocialInfo) error {
	for _, f := range socialInfoKeys {
		if err := Upsert(db, f.key, *f.ptr(&info)); err != nil {
			return err
		}
	}
	return nil
}

// WebSettings is the admin settings view: every field optional, only fields
// present in the request are written. Credential fields never touch the
// key-value table, see applyCredentials.
type WebSettings struct {
	BlogTitle       *string `json:"blogTitle"`
	BlogAuthor      *string `json:"blogAuthor"`
	BlogDomain      *string `json:"blogDomain"`
	BlogDescription *string `json:"blogDescription"`
	BlogICP         *string `json:"blogIcp"`

	UserAccount  *string `json:"userAccount"`
	UserPassword *string `json:"userPassword"`
	UserAvatar   *string `json:"userAvatar"`
	UserTalk     *string `json:"userTalk"`

	SocialGithub       *string `json:"socialGithub"`
	SocialEmail        *string `json:"socialEmail"`
	SocialBilibili     *string `json:"socialBilibili"`
	SocialQQ           *string `json:"socialQQ"`
	SocialNeteaseCloud *string `json:"socialNeteaseCloud"`

	OpenAIToken    *string `json:"openAiToken"`
	NeteaseCookies *string `json:"neteaseCookies"`
	GithubToken    *string `json:"githubToken"`
}

// webSettingKeys enumerates field-to-store-key bindings. The first key is
// the read key; writes fan out to every listed key so the legacy short names
// the public social view reads stay in sync.
var webSettingKeys = []struct {
	ptr  func(*WebSettings) **string
	keys []string
}{
	{func(w *WebSettings) **string { return &w.BlogTitle }, []string{"blog_title"}},
	{func(w *WebSettings) **string { return &w.BlogAuthor }, []string{"author"}},
	{func(w *WebSettings) **string { return &w.BlogDomain }, []string{"blogDomain"}},
	{func(w *WebSettings) **string { return &w.BlogDescription }, []string{"blogDescription"}},
	{func(w *WebSettings) **string { return &w.BlogICP }, []string{"icp"}},
	{func(w *WebSettings) **string { return &w.UserAvatar }, []string{"avatar"}},
	{func(w *WebSettings) **string { return &w.UserTalk }, []string{"talk"}},
	{func(w *WebSettings) **string { return &w.SocialGithub }, []string{"socialGithub", "github"}},
	{func(w *WebSettings) **string { return &w.SocialEmail }, []string{"socialEmail", "email"}},
	{func(w *WebSettings) **string { return &w.SocialBilibili }, []string{"socialBilibili", "bilibili"}},
	{func(w *WebSettings) **string { return &w.SocialQQ }, []string{"socialQQ", "qq"}},
	{func(w *WebSettings) **string { return &w.SocialNeteaseCloud }, []string{"socialNeteaseCloud"}},
	{func(w *WebSettings) **string { return &w.OpenAIToken }, []string{"openAiToken"}},
	{func(w *WebSettings) **string { return &w.NeteaseCookies }, []string{"neteaseCookies"}},
	{func(w *WebSettings) **string { return &w.GithubToken }, []string{"githubToken"}},
}

// LoadWebSettings projects the full admin view. Absent keys come back as ""
// and credentials are always reported empty.
func LoadWebSettings(db *gorm.DB) (WebSettings, error) {
	vals, err := Load(db)
	if err != nil {
		return WebSettings{}, err
	}

	var ws WebSettings
	for _, f := range webSettingKeys {
		v := vals[f.keys[0]]
		*f.ptr(&ws) = &v
	}

	empty := ""
	ws.UserAccount = &empty
	ws.UserPassword = &empty
	return ws, nil
}

// ApplyWebSettings writes every supplied field to its store keys and, when
// both credential fields are present and non-empty, rotates the admin user's
// login through hash.
func ApplyWebSettings(db *gorm.DB, ws WebSettings, hash HashFunc) error {
	if err := applyCredentials(db, ws, hash); err != nil {
		return err
	}

	for _, f := range webSettingKeys {
		v := *f.ptr(&ws)
		if v == nil {
			continue
		}
		for _, key := range f.keys {
			if err := Upsert(db, key, *v); err != nil {
				return err
			}
		}
	}
	return nil
}

func applyCredentials(db *gorm.DB, ws WebSettings, hash HashFunc) error {
	if ws.UserAccount == nil || ws.UserPassword == nil {
		return nil
	}
	if *ws.UserAccount == "" || *ws.UserPassword == "" {
		return nil
	}

	user, err := AdminUser(db)
	if errs.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return UpdateAdminCredentials(db, user, *ws.UserAccount, *ws.UserPassword, hash)
}
