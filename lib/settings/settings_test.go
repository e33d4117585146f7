package settings

import (
	"testing"

	"github.com/memory-blog/backend/types"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	_ "github.com/ncruces/go-sqlite3/embed"
	sqlite "github.com/ncruces/go-sqlite3/gormlite"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&types.Setting{}, &types.User{}))
	return db
}

func strp(s string) *string { return &s }

func testHash(plain string) (string, error) {
	return "hashed:" + plain, nil
}

func TestUpsertAndGet(t *testing.T) {
	db := openTestDB(t)

	require.Equal(t, "", Get(db, "author"))

	require.NoError(t, Upsert(db, "author", "Alice"))
	require.Equal(t, "Alice", Get(db, "author"))

	// Second write updates in place, it must not grow the table.
	require.NoError(t, Upsert(db, "author", "Bob"))
	require.Equal(t, "Bob", Get(db, "author"))

	var count int64
	require.NoError(t, db.Model(&types.Setting{}).Where("key_name = ?", "author").Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestLoadUserInfo_AbsentKeysProjectEmpty(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Upsert(db, "author", "sora"))
	require.NoError(t, Upsert(db, "blog_title", "memory blog"))

	info, err := LoadUserInfo(db)
	require.NoError(t, err)
	require.Equal(t, "sora", info.Author)
	require.Equal(t, "memory blog", info.Title)
	require.Equal(t, "", info.Avatar)
	require.Equal(t, "", info.Talk)
	require.Equal(t, "", info.ICP)
}

func TestSocialInfo_RoundTrip(t *testing.T) {
	db := openTestDB(t)

	in := SocialInfo{
		Github:   "https://github.com/sora",
		QQ:       "12345",
		Bilibili: "space/1",
	}
	require.NoError(t, ApplySocialInfo(db, in))

	out, err := LoadSocialInfo(db)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestApplyWebSettings_FanOutToLegacyKeys(t *testing.T) {
	db := openTestDB(t)

	ws := WebSettings{
		BlogTitle:    strp("memory blog"),
		SocialGithub: strp("https://github.com/sora"),
		SocialQQ:     strp("12345"),
	}
	require.NoError(t, ApplyWebSettings(db, ws, testHash))

	// Both the new key and the legacy short key carry the value, so the
	// public social view stays consistent with the admin view.
	require.Equal(t, "https://github.com/sora", Get(db, "socialGithub"))
	require.Equal(t, "https://github.com/sora", Get(db, "github"))
	require.Equal(t, "12345", Get(db, "socialQQ"))
	require.Equal(t, "12345", Get(db, "qq"))
	require.Equal(t, "memory blog", Get(db, "blog_title"))

	social, err := LoadSocialInfo(db)
	require.NoError(t, err)
	require.Equal(t, "https://github.com/sora", social.Github)

	// Absent fields stay untouched.
	require.Equal(t, "", Get(db, "icp"))
}

func TestApplyWebSettings_PartialUpdateLeavesOtherKeys(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, ApplyWebSettings(db, WebSettings{BlogTitle: strp("first"), BlogICP: strp("icp-1")}, testHash))
	require.NoError(t, ApplyWebSettings(db, WebSettings{BlogTitle: strp("second")}, testHash))

	require.Equal(t, "second", Get(db, "blog_title"))
	require.Equal(t, "icp-1", Get(db, "icp"))
}

func TestApplyWebSettings_Credentials(t *testing.T) {
	db := openTestDB(t)

	admin := types.User{Username: "sora", Password: "old", Role: "admin"}
	require.NoError(t, db.Create(&admin).Error)

	// Only one of the pair present: no credential change.
	require.NoError(t, ApplyWebSettings(db, WebSettings{UserAccount: strp("a")}, testHash))
	got, err := AdminUser(db)
	require.NoError(t, err)
	require.Equal(t, "sora", got.Username)

	// Empty strings do not count as present.
	require.NoError(t, ApplyWebSettings(db, WebSettings{UserAccount: strp("a"), UserPassword: strp("")}, testHash))
	got, err = AdminUser(db)
	require.NoError(t, err)
	require.Equal(t, "old", got.Password)

	// Both present and non-empty: account and hashed password rotate.
	require.NoError(t, ApplyWebSettings(db, WebSettings{UserAccount: strp("a"), UserPassword: strp("p")}, testHash))
	got, err = AdminUser(db)
	require.NoError(t, err)
	require.Equal(t, "a", got.Username)
	require.Equal(t, "hashed:p", got.Password)

	// Credentials never land in the key-value table and never echo back.
	var count int64
	require.NoError(t, db.Model(&types.Setting{}).Count(&count).Error)
	require.EqualValues(t, 0, count)

	view, err := LoadWebSettings(db)
	require.NoError(t, err)
	require.Equal(t, "", *view.UserAccount)
	require.Equal(t, "", *view.UserPassword)
}

func TestUpdateAdminCredentials_BcryptRoundTrip(t *testing.T) {
	db := openTestDB(t)

	admin := types.User{Username: "sora", Password: "old", Role: "admin"}
	require.NoError(t, db.Create(&admin).Error)

	bcryptHash := func(plain string) (string, error) {
		h, err := bcrypt.GenerateFromPassword([]byte(plain), 10)
		return string(h), err
	}
	require.NoError(t, UpdateAdminCredentials(db, admin, "sora", "123456", bcryptHash))

	got, err := AdminUser(db)
	require.NoError(t, err)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(got.Password), []byte("123456")))
}

func TestLoadWebSettings_AbsentKeysProjectEmpty(t *testing.T) {
	db := openTestDB(t)

	ws, err := LoadWebSettings(db)
	require.NoError(t, err)
	require.NotNil(t, ws.BlogTitle)
	require.Equal(t, "", *ws.BlogTitle)
	require.NotNil(t, ws.GithubToken)
	require.Equal(t, "", *ws.GithubToken)
}
