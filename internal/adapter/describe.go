package adapter

import "worksignals/internal/model"

// LocaleFa is the default locale for all user-facing copy.
const (
	LocaleFa = "fa"
	LocaleEn = "en"
)

// poleText carries the two readings of a bipolar signal. Descriptions
// are written as observations, never as judgments, and never mention
// instruments, dimension letters, or raw scores.
type poleText struct {
	Negative string
	Positive string
}

type signalCopy struct {
	Name  string
	Short string
	Poles poleText
	Icon  string
	Color string
}

var categoryNames = map[string]map[model.SignalCategory]string{
	LocaleFa: {
		model.CategoryWorkStyle:      "سبک کاری",
		model.CategoryCollaboration:  "همکاری",
		model.CategoryDecisionMaking: "تصمیم‌گیری",
		model.CategoryMotivation:     "انگیزه",
		model.CategoryEnvironment:    "محیط کار",
		model.CategoryGrowth:         "رشد",
	},
	LocaleEn: {
		model.CategoryWorkStyle:      "Work style",
		model.CategoryCollaboration:  "Collaboration",
		model.CategoryDecisionMaking: "Decision making",
		model.CategoryMotivation:     "Motivation",
		model.CategoryEnvironment:    "Environment",
		model.CategoryGrowth:         "Growth",
	},
}

var signalCopies = map[string]map[model.SignalID]signalCopy{
	LocaleFa: {
		model.SignalStructurePreference: {
			Name: "چارچوب‌پذیری", Short: "میزان تمایل به نظم و فرایند مشخص در کار",
			Poles: poleText{
				Negative: "در محیط‌های منعطف و بدون چارچوب سخت‌گیرانه راحت‌تر کار می‌کند",
				Positive: "در محیط‌های منظم با فرایندهای روشن بهترین عملکرد را دارد",
			},
			Icon: "layout-grid", Color: "#4F6AF6",
		},
		model.SignalAutonomyNeed: {
			Name: "استقلال در کار", Short: "میزان نیاز به آزادی عمل و تصمیم‌گیری مستقل",
			Poles: poleText{
				Negative: "با راهنمایی و همراهی نزدیک تیم، مطمئن‌تر پیش می‌رود",
				Positive: "با آزادی عمل و مسئولیت مستقل انرژی می‌گیرد",
			},
			Icon: "compass", Color: "#2BA58F",
		},
		model.SignalRoutinePreference: {
			Name: "تمایل به روال ثابت", Short: "ترجیح کارهای تکرارشونده در برابر کارهای متنوع",
			Poles: poleText{
				Negative: "از تنوع و تغییر در کار استقبال می‌کند",
				Positive: "در کارهای روال‌مند و قابل پیش‌بینی احساس آرامش می‌کند",
			},
			Icon: "repeat", Color: "#7A8AA0",
		},
		model.SignalCollaborationStyle: {
			Name: "سبک همکاری", Short: "ترجیح کار گروهی در برابر کار فردی",
			Poles: poleText{
				Negative: "به‌صورت فردی و متمرکز بهترین خروجی را می‌دهد",
				Positive: "در کار گروهی و هم‌فکری با دیگران شکوفا می‌شود",
			},
			Icon: "users", Color: "#E08A3C",
		},
		model.SignalSocialEnergy: {
			Name: "انرژی اجتماعی", Short: "میزان انرژی گرفتن از تعامل با دیگران",
			Poles: poleText{
				Negative: "با تمرکز در فضای آرام و تعامل کمتر انرژی می‌گیرد",
				Positive: "از تعامل و گفت‌وگوی مداوم با دیگران انرژی می‌گیرد",
			},
			Icon: "sparkles", Color: "#E0BC3C",
		},
		model.SignalCommunicationDirectness: {
			Name: "صراحت در گفت‌وگو", Short: "میزان رک و مستقیم بودن در ارتباط کاری",
			Poles: poleText{
				Negative: "با لحن ملایم و همدلانه ارتباط برقرار می‌کند",
				Positive: "نظر خود را روشن و بی‌واسطه بیان می‌کند",
			},
			Icon: "message-square", Color: "#C75B7A",
		},
		model.SignalRiskTolerance: {
			Name: "پذیرش ریسک", Short: "میزان راحتی با تصمیم‌های دارای عدم قطعیت",
			Poles: poleText{
				Negative: "پیش از اقدام، اطمینان و بررسی کافی را ترجیح می‌دهد",
				Positive: "با تصمیم‌های جسورانه در شرایط نامطمئن راحت است",
			},
			Icon: "trending-up", Color: "#D9534F",
		},
		model.SignalAnalyticalOrientation: {
			Name: "گرایش تحلیلی", Short: "تکیه بر داده و تحلیل در برابر شهود",
			Poles: poleText{
				Negative: "بیشتر بر شهود و تجربه عملی تکیه می‌کند",
				Positive: "پیش از نتیجه‌گیری، داده‌ها و جزئیات را می‌سنجد",
			},
			Icon: "bar-chart", Color: "#4F8EF6",
		},
		model.SignalDecisionSpeed: {
			Name: "سرعت تصمیم‌گیری", Short: "سرعت رسیدن به تصمیم در برابر بررسی طولانی",
			Poles: poleText{
				Negative: "برای تصمیم‌گیری زمان و تأمل بیشتری می‌خواهد",
				Positive: "سریع جمع‌بندی می‌کند و وارد عمل می‌شود",
			},
			Icon: "zap", Color: "#F6A64F",
		},
		model.SignalLeadershipTendency: {
			Name: "گرایش به هدایتگری", Short: "تمایل به جهت‌دادن و پیش‌بردن جمع",
			Poles: poleText{
				Negative: "نقش همراه و پشتیبان را به هدایت جمع ترجیح می‌دهد",
				Positive: "به‌طور طبیعی هدایت و پیش‌بردن کارها را بر عهده می‌گیرد",
			},
			Icon: "flag", Color: "#8A4FF6",
		},
		model.SignalAchievementDrive: {
			Name: "نتیجه‌گرایی", Short: "میزان انگیزه از رسیدن به اهداف مشخص",
			Poles: poleText{
				Negative: "کیفیت مسیر و تجربه کار برایش مهم‌تر از رقابت است",
				Positive: "با هدف‌گذاری روشن و رسیدن به نتیجه انگیزه می‌گیرد",
			},
			Icon: "target", Color: "#2B9FA5",
		},
		model.SignalRecognitionNeed: {
			Name: "نیاز به دیده‌شدن", Short: "اهمیت بازخورد و قدردانی در انگیزه کاری",
			Poles: poleText{
				Negative: "رضایت درونی از کار برایش کافی است",
				Positive: "قدردانی و دیده‌شدن تلاش‌هایش انگیزه‌بخش است",
			},
			Icon: "award", Color: "#E0653C",
		},
		model.SignalPacePreference: {
			Name: "ریتم کاری", Short: "ترجیح ریتم پرشتاب در برابر ریتم آرام",
			Poles: poleText{
				Negative: "در ریتم آرام و پیوسته بهترین کیفیت را ارائه می‌دهد",
				Positive: "در محیط‌های پرشتاب و پویا شکوفا می‌شود",
			},
			Icon: "gauge", Color: "#F64F6A",
		},
		model.SignalPressureTolerance: {
			Name: "تاب‌آوری در فشار", Short: "حفظ عملکرد در شرایط پرفشار",
			Poles: poleText{
				Negative: "در فضای کم‌فشار و قابل برنامه‌ریزی بهتر کار می‌کند",
				Positive: "زیر فشار و ضرب‌الاجل تمرکز خود را حفظ می‌کند",
			},
			Icon: "shield", Color: "#5B7AC7",
		},
		model.SignalLearningOrientation: {
			Name: "یادگیری‌محوری", Short: "اشتیاق به یادگیری و تجربه‌های تازه",
			Poles: poleText{
				Negative: "تسلط عمیق بر حوزه فعلی را به تجربه‌های تازه ترجیح می‌دهد",
				Positive: "به‌دنبال یادگیری مداوم و مهارت‌های تازه است",
			},
			Icon: "book-open", Color: "#3CB371",
		},
		model.SignalFeedbackOpenness: {
			Name: "گشودگی به بازخورد", Short: "میزان استقبال از نظر دیگران درباره کار",
			Poles: poleText{
				Negative: "ارزیابی شخصی خود را مبنای بهبود قرار می‌دهد",
				Positive: "از بازخورد دیگران برای بهترشدن استقبال می‌کند",
			},
			Icon: "refresh-ccw", Color: "#6AC74F",
		},
		model.SignalCreativeExpression: {
			Name: "خلاقیت", Short: "تمایل به راه‌حل‌های نو در برابر روش‌های امتحان‌شده",
			Poles: poleText{
				Negative: "به روش‌های امتحان‌شده و مطمئن پایبند است",
				Positive: "از ایده‌پردازی و راه‌حل‌های نامتعارف لذت می‌برد",
			},
			Icon: "feather", Color: "#C74FF6",
		},
	},
	LocaleEn: {
		model.SignalStructurePreference: {
			Name: "Structure preference", Short: "How much order and defined process helps them work",
			Poles: poleText{
				Negative: "Works best in flexible, lightly structured settings",
				Positive: "Works best with clear processes and defined expectations",
			},
			Icon: "layout-grid", Color: "#4F6AF6",
		},
		model.SignalAutonomyNeed: {
			Name: "Autonomy", Short: "How much independence energizes their work",
			Poles: poleText{
				Negative: "Moves with more certainty alongside close guidance",
				Positive: "Energized by freedom to own decisions and direction",
			},
			Icon: "compass", Color: "#2BA58F",
		},
		model.SignalRoutinePreference: {
			Name: "Routine preference", Short: "Repeatable work versus constant variety",
			Poles: poleText{
				Negative: "Welcomes variety and frequent change",
				Positive: "At ease with steady, predictable work",
			},
			Icon: "repeat", Color: "#7A8AA0",
		},
		model.SignalCollaborationStyle: {
			Name: "Collaboration style", Short: "Working with others versus working solo",
			Poles: poleText{
				Negative: "Delivers best working independently and focused",
				Positive: "Thrives on teamwork and shared thinking",
			},
			Icon: "users", Color: "#E08A3C",
		},
		model.SignalSocialEnergy: {
			Name: "Social energy", Short: "How much interaction fuels them",
			Poles: poleText{
				Negative: "Recharges in quiet, low-interaction focus time",
				Positive: "Draws energy from frequent interaction",
			},
			Icon: "sparkles", Color: "#E0BC3C",
		},
		model.SignalCommunicationDirectness: {
			Name: "Directness", Short: "How plainly they communicate at work",
			Poles: poleText{
				Negative: "Communicates with a gentle, considered tone",
				Positive: "Says what they think, plainly and early",
			},
			Icon: "message-square", Color: "#C75B7A",
		},
		model.SignalRiskTolerance: {
			Name: "Risk tolerance", Short: "Comfort with uncertain decisions",
			Poles: poleText{
				Negative: "Prefers solid ground before committing",
				Positive: "Comfortable betting on uncertain outcomes",
			},
			Icon: "trending-up", Color: "#D9534F",
		},
		model.SignalAnalyticalOrientation: {
			Name: "Analytical orientation", Short: "Data and detail versus intuition",
			Poles: poleText{
				Negative: "Leans on intuition and hands-on experience",
				Positive: "Weighs data and detail before concluding",
			},
			Icon: "bar-chart", Color: "#4F8EF6",
		},
		model.SignalDecisionSpeed: {
			Name: "Decision speed", Short: "Fast calls versus long deliberation",
			Poles: poleText{
				Negative: "Takes time to deliberate before deciding",
				Positive: "Converges quickly and moves to action",
			},
			Icon: "zap", Color: "#F6A64F",
		},
		model.SignalLeadershipTendency: {
			Name: "Leadership tendency", Short: "Inclination to set direction for a group",
			Poles: poleText{
				Negative: "Prefers a supporting role over steering the group",
				Positive: "Naturally steps up to set direction",
			},
			Icon: "flag", Color: "#8A4FF6",
		},
		model.SignalAchievementDrive: {
			Name: "Achievement drive", Short: "Motivation from concrete goals",
			Poles: poleText{
				Negative: "Values the quality of the journey over the scoreboard",
				Positive: "Motivated by clear goals and visible results",
			},
			Icon: "target", Color: "#2B9FA5",
		},
		model.SignalRecognitionNeed: {
			Name: "Recognition need", Short: "How much acknowledgment matters",
			Poles: poleText{
				Negative: "Satisfied by the work itself",
				Positive: "Energized when effort is seen and acknowledged",
			},
			Icon: "award", Color: "#E0653C",
		},
		model.SignalPacePreference: {
			Name: "Pace preference", Short: "Fast-moving versus steady rhythm",
			Poles: poleText{
				Negative: "Delivers best at a calm, steady rhythm",
				Positive: "Thrives in fast-moving environments",
			},
			Icon: "gauge", Color: "#F64F6A",
		},
		model.SignalPressureTolerance: {
			Name: "Pressure tolerance", Short: "Holding performance under pressure",
			Poles: poleText{
				Negative: "Works best with plannable, low-pressure conditions",
				Positive: "Keeps focus under deadlines and pressure",
			},
			Icon: "shield", Color: "#5B7AC7",
		},
		model.SignalLearningOrientation: {
			Name: "Learning orientation", Short: "Appetite for new skills and topics",
			Poles: poleText{
				Negative: "Prefers deepening mastery of the current domain",
				Positive: "Seeks out new skills and unfamiliar ground",
			},
			Icon: "book-open", Color: "#3CB371",
		},
		model.SignalFeedbackOpenness: {
			Name: "Feedback openness", Short: "Welcoming others' input on their work",
			Poles: poleText{
				Negative: "Relies on self-assessment to improve",
				Positive: "Actively invites feedback to improve",
			},
			Icon: "refresh-ccw", Color: "#6AC74F",
		},
		model.SignalCreativeExpression: {
			Name: "Creative expression", Short: "Novel approaches versus proven methods",
			Poles: poleText{
				Negative: "Sticks with proven, dependable methods",
				Positive: "Enjoys unconventional ideas and fresh approaches",
			},
			Icon: "feather", Color: "#C74FF6",
		},
	},
}

func normalizeLocale(locale string) string {
	if _, ok := signalCopies[locale]; ok {
		return locale
	}
	return LocaleFa
}

// DescribeSignal renders a signal for end users in the given locale.
// The full description follows the pole the value leans toward.
func DescribeSignal(s model.Signal, locale string) model.SignalDescription {
	locale = normalizeLocale(locale)
	text := signalCopies[locale][s.ID]
	full := text.Poles.Positive
	if s.Value < 0 {
		full = text.Poles.Negative
	}
	return model.SignalDescription{
		CategoryName:     categoryNames[locale][s.Category],
		Name:             text.Name,
		ShortDescription: text.Short,
		FullDescription:  full,
		Icon:             text.Icon,
		Color:            text.Color,
	}
}

// SignalName returns the localized display name of a signal id.
func SignalName(id model.SignalID, locale string) string {
	locale = normalizeLocale(locale)
	return signalCopies[locale][id].Name
}
