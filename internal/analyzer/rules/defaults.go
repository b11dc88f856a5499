package rules

// Default returns the built-in rule set. The config layer starts from this
// and applies user overrides on top of it.
func Default() *RuleSet {
	return &RuleSet{
		Categories: []Category{
			{
				Name:   "education",
				Folder: "0_Education",
				Keywords: []string{
					"教育", "指導", "授業", "学習", "国語", "読解", "表現", "生徒", "先生", "教師",
					"対句法", "リズム", "音数", "韻律", "修辞", "技法", "文体", "表現法",
					"シーン", "考えて", "選びなさい", "思い出す", "思い浮かべ", "わかる", "ひっかけ",
					"問題", "答え", "正解", "不正解", "例えば", "仮に", "場面", "状況", "状態",
					"そうですね", "素晴らしい", "残念", "惜しい", "くん", "さん", "ちゃん",
					"聴覚", "視覚", "触覚", "嗅覚", "味覚", "五感", "感覚", "体の部分", "メロディー",
				},
				Patterns: []string{
					`[ぁ-んー]+くん|[ぁ-んー]+さん|[ぁ-んー]+ちゃん`,
					`わかる？|わかりますか？|理解できた？`,
					`そうですね|素晴らしい|残念|惜しい|正解|不正解`,
					`考えて|思い出す|思い浮かべ|選びなさい|答えなさい`,
					`例えば|仮に|場合|シーン|状況|場面`,
					`ひっかけ|問題|テスト|授業|指導`,
					`聴覚|視覚|五感|体の部分|感覚`,
				},
				PatternWeight: 6, // 3 per match, doubled for this category
				PriorityEntities: []Entity{
					{Canonical: "開成", Patterns: []string{"開成中学", "開成"}},
					{Canonical: "麻布", Patterns: []string{"麻布中学", "麻布"}},
					{Canonical: "駒東", Patterns: []string{"駒場東邦", "駒東"}},
					{Canonical: "桜蔭", Patterns: []string{"桜蔭中学", "桜蔭"}},
					{Canonical: "女子学院", Patterns: []string{"女子学院", "JG"}},
					{Canonical: "雙葉", Patterns: []string{"雙葉中学", "雙葉"}},
					{Canonical: "筑駒", Patterns: []string{"筑波大駒場", "筑駒"}},
					{Canonical: "渋幕", Patterns: []string{"渋谷幕張", "渋幕"}},
					{Canonical: "武蔵", Patterns: []string{"武蔵中学", "武蔵"}},
					{Canonical: "SAPIX", Patterns: []string{"サピックス", "SAPIX", "サピ"}},
				},
				BaseTags: []LabelGroup{
					{Label: "中学受験", Triggers: []string{"中学受験", "受験", "入試", "合格"}},
					{Label: "国語指導", Triggers: []string{"国語", "読解", "表現", "文章"}},
					{Label: "過去問分析", Triggers: []string{"過去問", "出題傾向", "分析"}},
					{Label: "入試対策", Triggers: []string{"入試対策", "対策", "入試"}},
					{Label: "読解指導", Triggers: []string{"読解指導", "読解", "文章読解"}},
					{Label: "表現指導", Triggers: []string{"表現指導", "表現技法", "記述"}},
				},
				FallbackTerms: []string{
					"開成", "麻布", "駒東", "桜蔭", "女子学院", "雙葉", "筑駒", "渋幕", "渋渋", "武蔵", "海城",
					"中学受験", "国語", "過去問", "入試", "分析", "傾向", "対策", "SAPIX", "サピックス", "四谷大塚", "日能研",
				},
			},
			{
				Name:   "tech",
				Folder: "1_Tech",
				Keywords: []string{
					"プログラミング", "api", "システム", "アプリ", "python", "javascript",
					"tech", "技術", "開発", "コード", "データ", "ai", "機械学習",
				},
				PriorityEntities: []Entity{
					{Canonical: "Claude", Patterns: []string{"Claude", "claude"}},
					{Canonical: "ChatGPT", Patterns: []string{"ChatGPT", "chatgpt", "Chat GPT"}},
					{Canonical: "GitHub", Patterns: []string{"GitHub", "github", "Github"}},
					{Canonical: "Python", Patterns: []string{"Python", "python"}},
					{Canonical: "JavaScript", Patterns: []string{"JavaScript", "javascript", "JS"}},
					{Canonical: "Cursor", Patterns: []string{"Cursor", "cursor"}},
					{Canonical: "Obsidian", Patterns: []string{"Obsidian", "obsidian"}},
					{Canonical: "MCP", Patterns: []string{"MCP", "mcp"}},
					{Canonical: "Supabase", Patterns: []string{"Supabase", "supabase"}},
				},
				BaseTags: []LabelGroup{
					{Label: "プログラミング", Triggers: []string{"プログラミング", "コード", "開発"}},
					{Label: "AI開発", Triggers: []string{"AI", "機械学習", "Claude", "ChatGPT"}},
					{Label: "システム構築", Triggers: []string{"システム構築", "システム", "構築"}},
					{Label: "API連携", Triggers: []string{"API", "連携", "接続"}},
					{Label: "データ分析", Triggers: []string{"データ分析", "データ", "集計"}},
					{Label: "プロンプトエンジニアリング", Triggers: []string{"プロンプト", "指示文"}},
				},
				FallbackTerms: []string{
					"GitHub", "Git", "Python", "JavaScript", "API", "ChatGPT", "Claude", "AI",
					"システム", "アプリ", "プログラミング", "開発", "トークン", "認証",
				},
			},
			{
				Name:   "business",
				Folder: "2_Business",
				Keywords: []string{
					"ビジネス", "マーケティング", "戦略", "営業", "集客", "seo", "sns",
					"広告", "売上", "収益", "顧客", "市場",
				},
				BaseTags: []LabelGroup{
					{Label: "ビジネス戦略", Triggers: []string{"ビジネス", "戦略", "事業"}},
					{Label: "マーケティング戦略", Triggers: []string{"マーケティング", "プロモーション"}},
					{Label: "売上分析", Triggers: []string{"売上", "収益", "利益"}},
					{Label: "顧客獲得", Triggers: []string{"顧客", "集客", "クライアント"}},
					{Label: "ブランディング", Triggers: []string{"ブランディング", "ブランド"}},
				},
				FallbackTerms: []string{
					"マーケティング", "戦略", "営業", "集客", "売上", "顧客", "経営", "SEO",
				},
			},
			{
				Name:   "media",
				Folder: "3_Media",
				Keywords: []string{
					"インフルエンサー", "フォロワー", "エンゲージメント", "ポスト", "投稿",
					"youtube", "tiktok", "インスタ", "発信", "コンテンツ",
				},
				PriorityEntities: []Entity{
					{Canonical: "西村創一朗", Patterns: []string{"西村創一朗", "西村"}},
					{Canonical: "西川将史", Patterns: []string{"西川将史", "西川"}},
					{Canonical: "梶谷健人", Patterns: []string{"梶谷健人", "梶谷"}},
					{Canonical: "X分析", Patterns: []string{"X分析", "Ｘ分析"}},
					{Canonical: "SNS分析", Patterns: []string{"SNS分析", "ポスト分析", "アカウント分析"}},
					{Canonical: "エンゲージメント", Patterns: []string{"エンゲージメント", "いいね", "リポスト"}},
				},
				BaseTags: []LabelGroup{
					{Label: "SNS戦略", Triggers: []string{"SNS", "戦略", "X", "Twitter"}},
					{Label: "SNS運用", Triggers: []string{"SNS運用", "運用", "投稿"}},
					{Label: "コンテンツ分析", Triggers: []string{"コンテンツ", "発信"}},
					{Label: "インフルエンサー分析", Triggers: []string{"インフルエンサー"}},
					{Label: "エンゲージメント分析", Triggers: []string{"エンゲージメント", "いいね", "フォロワー"}},
				},
				FallbackTerms: []string{
					"X", "Twitter", "SNS", "アカウント", "ポスト", "フォロワー", "インフルエンサー",
					"分析", "西村創一朗", "西川将史", "梶谷健人", "エンゲージメント",
				},
			},
			{
				Name:   "ideas",
				Folder: "4_Ideas",
				Keywords: []string{
					"アイデア", "企画", "提案", "案", "プロジェクト", "創作", "発想",
					"ブレスト", "コンセプト", "プラン",
				},
				BaseTags: []LabelGroup{
					{Label: "アイデア創出", Triggers: []string{"アイデア", "発想", "思いつき"}},
					{Label: "企画立案", Triggers: []string{"企画", "提案", "プラン"}},
					{Label: "ブレインストーミング", Triggers: []string{"ブレスト", "ブレインストーミング"}},
				},
				FallbackTerms: []string{"アイデア", "企画", "提案", "プロジェクト", "コンセプト"},
			},
		},
		DefaultCategory:       "general",
		NormalizationConstant: 0.1,

		VoiceSubstitutions: []Substitution{
			{From: "クロードコード", To: "Claude Code"},
			{From: "クロード", To: "Claude"},
			{From: "チャットジーピーティー", To: "ChatGPT"},
			{From: "チャットGPT", To: "ChatGPT"},
			{From: "ギットハブ", To: "GitHub"},
			{From: "オブシディアン", To: "Obsidian"},
			{From: "パイソン", To: "Python"},
			{From: "ジャバスクリプト", To: "JavaScript"},
			{From: "エーピーアイ", To: "API"},
			{From: "スラック", To: "Slack"},
		},

		MeetingKeywords: []string{"打ち合わせ", "会議", "ミーティング", "議事録", "相談", "面談", "商談"},
		BusinessPriorityKeywords: []string{
			"コンサル", "経営", "事業計画", "売上目標", "集客施策", "クライアント",
		},
		TechPriorityKeywords: []string{
			"バイブコーディング", "リファクタリング", "デプロイ", "プルリクエスト", "DX",
		},
		AIBusinessActions: []string{"集客", "売上", "マーケティング", "戦略", "経営", "ビジネス"},
		AITechActions:     []string{"実装", "開発", "コード", "プログラミング", "API", "システム"},

		PersonMeetingCategory: "business",
		BusinessCategory:      "business",
		TechCategory:          "tech",

		Honorifics: []string{"さん", "様", "氏"},
		PersonNameExcludes: []string{
			"を展開", "について", "に関して", "そうです", "皆さん", "みなさん", "お客様",
		},

		TitleMaxRunes: 30,
		CommonKatakana: []string{
			"アイデア", "メモ", "ファイル", "フォルダ", "ページ", "サイト", "システム",
			"データ", "ユーザー", "サービス", "マーケティング", "ビジネス",
		},
		CommonWords: []string{
			"ある", "いる", "する", "なる", "です", "ます", "この", "その", "あの",
			"それ", "これ", "あれ",
		},
		ActionWords: []string{
			"開発", "設計", "実装", "分析", "検討", "構築", "作成", "生成", "連携",
			"活用", "解釈", "理解", "指導", "学習", "授業", "記録", "相談", "会議",
			"打ち合わせ",
		},
		FillerLeads: []string{"このシーン", "そうですね", "えーと", "あのー", "ちなみに"},
		UniversalEnglish: []string{
			"ChatGPT", "Python", "API", "JavaScript", "React", "Vue", "Node", "Git",
			"GitHub", "Docker", "AWS", "Azure", "GCP", "Obsidian", "Instagram",
			"Twitter", "Facebook", "LinkedIn", "YouTube", "TikTok", "Google",
			"Amazon", "Apple",
		},

		MaxTags: 12,
		UniversalEntities: []Entity{
			{Canonical: "Claude", Patterns: []string{"Claude", "claude"}},
			{Canonical: "ChatGPT", Patterns: []string{"ChatGPT", "chatgpt"}},
			{Canonical: "GitHub", Patterns: []string{"GitHub", "github"}},
			{Canonical: "Obsidian", Patterns: []string{"Obsidian", "obsidian"}},
			{Canonical: "Notion", Patterns: []string{"Notion", "notion"}},
		},
		ActionTags: []LabelGroup{
			{Label: "学習", Triggers: []string{"学習", "勉強", "習得", "理解"}},
			{Label: "分析", Triggers: []string{"分析", "解析", "調査", "検証"}},
			{Label: "記録", Triggers: []string{"記録", "メモ", "保存", "整理"}},
			{Label: "計画", Triggers: []string{"計画", "戦略", "設計", "企画"}},
			{Label: "実行", Triggers: []string{"実行", "実施", "実装", "開発"}},
			{Label: "評価", Triggers: []string{"評価", "検討", "判断", "確認"}},
		},
		EmotionTags: []LabelGroup{
			{Label: "重要", Triggers: []string{"重要", "大切", "必須", "!", "！"}},
			{Label: "疑問", Triggers: []string{"？", "?", "どう", "なぜ", "どのように"}},
			{Label: "ポジティブ", Triggers: []string{"素晴らしい", "良い", "成功", "改善"}},
			{Label: "課題", Triggers: []string{"課題", "問題", "改善", "対策"}},
			{Label: "発見", Triggers: []string{"発見", "気づき", "学び", "ひらめき"}},
		},
		ContentTypeTags: []LabelGroup{
			{Label: "アイデア", Triggers: []string{"アイデア", "案", "提案", "思いつき"}},
			{Label: "レポート", Triggers: []string{"結果", "報告", "レポート", "まとめ"}},
			{Label: "メモ", Triggers: []string{"メモ", "覚書", "備忘録"}},
			{Label: "ツール", Triggers: []string{"ツール", "道具", "アプリ", "サービス"}},
			{Label: "プロセス", Triggers: []string{"手順", "ステップ", "プロセス", "方法"}},
		},

		Relations: RelationRules{
			TitleScale:           1.5,
			TitleGate:            0.3,
			TagScale:             1.2,
			TagGate:              0.2,
			SNSPairThreshold:     0.15,
			TechPairThreshold:    0.12,
			DefaultPairThreshold: 0.18,
			SNSTitleKeywords: []string{
				"X投稿", "SNS", "アカウント分析", "ポスト分析", "フォロワー", "インフルエンサー",
			},
			TechTitleKeywords: []string{
				"API", "プログラミング", "システム", "GitHub", "Python", "AI", "Claude", "コード",
			},
			TitleStopwords: []string{"について", "に関して", "の方法", "まとめ", "メモ"},
			ContentStopwords: []string{
				"について", "に関して", "ができる", "である", "ている", "ました", "します", "された",
			},
			ImportantKeywords: []string{
				"Claude", "ChatGPT", "GitHub", "Python", "API", "Obsidian", "MCP",
				"プログラミング", "プロンプト", "中学受験", "国語", "過去問", "SAPIX",
				"エンゲージメント", "フォロワー", "インフルエンサー", "マーケティング",
				"集客", "売上",
			},
			DocFilePatterns: []string{
				`(?i)^readme`, `(?i)^license`, `(?i)^changelog`, `(?i)^contributing`,
				`(?i)^install`, `(?i)^makefile`, `(?i)^package\.json$`, `(?i)^requirements`,
				`(?i)^setup\.(py|cfg)$`, `node_modules/`, `\.git/`,
			},
			DocKeywords: []string{
				"install", "installation", "usage", "api reference", "npm", "pip",
				"requirements", "license", "getting started", "quickstart",
				"インストール", "セットアップ", "使い方", "依存関係", "ビルド",
			},
			DocKeywordLimit: 3,
			DocHeadBytes:    500,
			MaxRelations:    3,
		},

		MinSummaryPoints: 3,
		MaxSummaryPoints: 6,
		SummaryFillers: []string{
			"内容の記録と整理",
			"今後の参照用メモ",
			"関連トピックの続報待ち",
		},
		MaxKeyTerms: 5,
	}
}
