package domain

// Field names expected in a submitted application form, in display order.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldPosition = "position"
	FieldResume   = "resume"
)

// RequiredFields は応募フォームで必須となるフィールド名を表示順に並べたもの。
var RequiredFields = []string{FieldName, FieldEmail, FieldPhone, FieldPosition, FieldResume}

// Application は 1 リクエスト分の応募内容を保持する値オブジェクト。
// 入力値は変換せずそのまま保持し、リクエスト終了とともに破棄される。
type Application struct {
	name     string
	email    string
	phone    string
	position string
	resume   string
}

// NewApplication builds an Application from raw form values.
func NewApplication(name, email, phone, position, resume string) Application {
	return Application{
		name:     name,
		email:    email,
		phone:    phone,
		position: position,
		resume:   resume,
	}
}

func (a Application) Name() string     { return a.name }
func (a Application) Email() string    { return a.email }
func (a Application) Phone() string    { return a.phone }
func (a Application) Position() string { return a.position }
func (a Application) Resume() string   { return a.resume }
