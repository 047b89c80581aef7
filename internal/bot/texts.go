package bot

// Reply-keyboard labels. Routing matches these exactly.
const (
	btnEvents    = "📅 Мероприятия"
	btnNotes     = "📝 Заметки"
	btnBack      = "⬅️ Назад"
	btnAddEvent  = "➕ Добавить мероприятие"
	btnViewEvent = "👀 Просмотреть мероприятия"
	btnAddNote   = "➕ Создать заметку"
	btnViewNote  = "👀 Просмотреть заметки"
	btnDelete    = "🗑 Удалить"
)

const (
	textMainMenu   = "Что вы хотите сделать?"
	textEventsMenu = "Выберите действие с мероприятиями:"
	textNotesMenu  = "Выберите действие с заметками:"

	textAlreadyRegistered = "Вы уже зарегистрированы."
	textWelcomeFmt        = "👋 Привет, %s! Вы успешно зарегистрированы."

	textNoEvents      = "📭 У вас нет запланированных мероприятий."
	textNoNotes       = "📭 У вас нет заметок."
	textEventBodyFmt  = "**%s**\n📅 Дата: %s\n📌 Тип: %s\n🔖 Хэштеги: %s"
	textNoteBodyFmt   = "**Заметка %d:**\n%s"
	textEventNotFound = "❌ Мероприятие не найдено или уже удалено."
	textNoteNotFound  = "❌ Заметка не найдена или уже удалена."
	textEventDeleted  = "✅ Мероприятие '%s' удалено."
	textNoteDeleted   = "✅ Заметка %d удалена."

	textStatsFmt = "📊 Пользователей: %d\nМероприятий: %d\nЗаметок: %d"

	textHelp = `Я помогаю вести мероприятия и заметки.

📅 Мероприятия — добавить мероприятие с датой, типом и хэштегами или посмотреть запланированные.
📝 Заметки — создать заметку или посмотреть существующие.
Удалить запись можно кнопкой 🗑 под ней.

/start — регистрация и главное меню
/help — эта справка`
)
