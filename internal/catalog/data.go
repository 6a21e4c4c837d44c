package catalog

import "github.com/denisok6893-rgb/date-outing-ai/internal/domain"

func yen(v int) *int { return &v }

// BuiltinBands returns the per-person price scale, cheapest first.
func BuiltinBands() []domain.BudgetBand {
	return []domain.BudgetBand{
		{
			Code:        "¥",
			Label:       "お手頃",
			MaxJPY:      yen(3000),
			Description: "入場無料スポットや軽食中心の気軽なプラン向け",
		},
		{
			Code:        "¥¥",
			Label:       "スタンダード",
			MinJPY:      yen(3000),
			MaxJPY:      yen(8000),
			Description: "カフェやワークショップを楽しむ定番の価格帯",
		},
		{
			Code:        "¥¥¥",
			Label:       "ちょっと贅沢",
			MinJPY:      yen(8000),
			MaxJPY:      yen(20000),
			Description: "コースディナーや体験プログラム込みのご褒美プラン",
		},
		{
			Code:        "¥¥¥¥",
			Label:       "スペシャル",
			MinJPY:      yen(20000),
			MaxJPY:      yen(40000),
			Description: "記念日向けのレストランやスパを含む特別な一日",
		},
		{
			Code:        "¥プレミアム",
			Label:       "プレミアム",
			MinJPY:      yen(40000),
			Description: "ミシュラン店や貸切体験などの最上級プラン",
		},
	}
}

// BuiltinExperiences returns the curated plan data. Entries are ordered by
// city; the matching engine relies on this iteration order for stable
// tie-breaking.
func BuiltinExperiences() []domain.Experience {
	return []domain.Experience{
		{
			City:          "東京",
			Title:         "隅田川沿いナイトピクニック",
			Description:   "夕暮れに合わせて隅田川沿いを散策し、夜景を眺めながら軽食を楽しむロマンチックなピクニックプラン。",
			ActivityType:  "アウトドア",
			Budget:        "¥¥",
			Weather:       "晴れ",
			Mood:          "ロマンチック",
			DurationHours: 3,
			Highlights:    []string{"スカイツリーの夜景", "川沿いの静かな時間", "気軽に楽しめる軽食"},
			IdealSeason:   "春〜秋",
			IdealTime:     "夕方〜夜",
			Tips:          []string{"レジャーシートと軽食は浅草で調達", "夜風が冷えるので薄手のブランケットを持参"},
		},
		{
			City:          "東京",
			Title:         "表参道アートギャラリー巡り",
			Description:   "表参道周辺のギャラリーを散策し、お気に入りの作品を探しながらおしゃれなカフェでひと休みするカルチャーデート。",
			ActivityType:  "インドア",
			Budget:        "¥¥",
			Weather:       "雨",
			Mood:          "知的",
			DurationHours: 4,
			Highlights:    []string{"最新アートとの出会い", "ギャラリーカフェ", "ショッピングも楽しめる"},
			IdealSeason:   "オールシーズン",
			IdealTime:     "午後〜夕方",
			Tips:          []string{"混雑を避けるなら平日がおすすめ", "最後は青山通り沿いの人気カフェで一息"},
		},
		{
			City:            "東京",
			Title:           "銀座ミシュランディナーと夜景バー",
			Description:     "銀座のミシュラン掲載店で旬のコースを味わい、食後は丸の内の高層バーで夜景とシグネチャーカクテルを楽しむラグジュアリープラン。",
			ActivityType:    "グルメ",
			Budget:          "¥プレミアム",
			Weather:         "晴れ",
			Mood:            "ラグジュアリー",
			DurationHours:   5,
			Highlights:      []string{"ミシュラン星付きの味", "夜景の見える特等席", "ソムリエ厳選のペアリング"},
			IdealSeason:     "オールシーズン",
			IdealTime:       "夜",
			Tips:            []string{"2週間前までの予約が安心", "ドレスコードに注意"},
			BookingRequired: true,
		},
		{
			City:            "東京",
			Title:           "谷中レトロ散歩と抹茶ワークショップ",
			Description:     "谷中銀座の昔ながらの商店街を散策し、町家茶室で本格的な抹茶点てを体験する癒やしの半日。",
			ActivityType:    "カルチャー",
			Budget:          "¥¥",
			Weather:         "晴れ",
			Mood:            "リラックス",
			DurationHours:   4,
			Highlights:      []string{"猫のいる路地散策", "職人の抹茶講座", "手作り和菓子付き"},
			IdealSeason:     "春・秋",
			IdealTime:       "午前〜午後",
			Tips:            []string{"抹茶ワークショップは前日までに要予約", "歩きやすい靴を選ぶ"},
			BookingRequired: true,
		},
		{
			City:          "京都",
			Title:         "嵐山サイクリングと竹林散歩",
			Description:   "レンタサイクルで嵐山を巡り、渡月橋や竹林の小径を散歩するアクティブな自然満喫プラン。",
			ActivityType:  "アウトドア",
			Budget:        "¥",
			Weather:       "晴れ",
			Mood:          "アクティブ",
			DurationHours: 5,
			Highlights:    []string{"渡月橋の絶景", "竹林の静けさ", "自転車での爽快感"},
			IdealSeason:   "春・秋",
			IdealTime:     "午前〜夕方",
			Tips:          []string{"朝早く出発すると人混みを避けられる", "竹林では自転車を押して歩行"},
		},
		{
			City:            "京都",
			Title:           "京町家プライベート茶会",
			Description:     "築100年の京町家を貸し切り、茶道家による茶会と懐石を体験する伝統文化プラン。",
			ActivityType:    "カルチャー",
			Budget:          "¥¥¥",
			Weather:         "雨",
			Mood:            "伝統",
			DurationHours:   3,
			Highlights:      []string{"亭主の点前", "季節の主菓子", "床の間のしつらえ"},
			IdealSeason:     "オールシーズン",
			IdealTime:       "午後",
			Tips:            []string{"着物レンタルを合わせると雰囲気が高まる", "到着は開始10分前を目安に"},
			BookingRequired: true,
		},
		{
			City:          "京都",
			Title:         "鴨川サンセットピクニック",
			Description:   "三条大橋近くでテイクアウトを用意し、鴨川沿いで夕暮れを眺めながらリラックスする定番デート。",
			ActivityType:  "アウトドア",
			Budget:        "¥¥",
			Weather:       "晴れ",
			Mood:          "ロマンチック",
			DurationHours: 2,
			Highlights:    []string{"鴨川の夕景", "川辺の涼しい風", "京おばんざいテイクアウト"},
			IdealSeason:   "春〜初秋",
			IdealTime:     "夕方",
			Tips:          []string{"レジャーシートの貸し出しサービスを利用", "雨天時は近隣カフェへプランB"},
		},
		{
			City:            "大阪",
			Title:           "中之島ジャズバー＆リバークルーズ",
			Description:     "夕方のリバークルーズで川辺の景色を楽しんだあと、ジャズバーで大人な時間を過ごすナイトデート。",
			ActivityType:    "ナイトライフ",
			Budget:          "¥¥¥",
			Weather:         "曇り",
			Mood:            "ラグジュアリー",
			DurationHours:   4,
			Highlights:      []string{"リバークルーズ", "生演奏のジャズ", "夜景スポット"},
			IdealSeason:     "春〜秋",
			IdealTime:       "夜",
			Tips:            []string{"雨天時はクルーズ便の運航状況を確認", "バーはミュージックチャージあり"},
			BookingRequired: true,
		},
		{
			City:          "大阪",
			Title:         "堀江クラフトグルメツアー",
			Description:   "堀江エリアのクラフトビールタップルームやロースタリーを巡り、路地裏のスイーツも楽しむ食いだおれ散策。",
			ActivityType:  "グルメ",
			Budget:        "¥¥",
			Weather:       "曇り",
			Mood:          "カジュアル",
			DurationHours: 4,
			Highlights:    []string{"限定クラフトビール", "自家焙煎コーヒー", "フォトジェニックなスイーツ"},
			IdealSeason:   "オールシーズン",
			IdealTime:     "午後〜夜",
			Tips:          []string{"テイスティングセットを共有すると多品種味わえる", "歩きやすい靴がおすすめ"},
		},
		{
			City:            "大阪",
			Title:           "万博記念公園ナイトイルミネーション",
			Description:     "太陽の塔を彩る季節限定イルミネーションとライトアップされた日本庭園を巡る幻想的な夜散歩。",
			ActivityType:    "アウトドア",
			Budget:          "¥",
			Weather:         "晴れ",
			Mood:            "ドラマチック",
			DurationHours:   3,
			Highlights:      []string{"太陽の塔プロジェクションマッピング", "夜の日本庭園", "屋台フード"},
			IdealSeason:     "冬",
			IdealTime:       "夜",
			Tips:            []string{"入場チケットはオンライン購入がスムーズ", "防寒対策をしっかり"},
			BookingRequired: true,
		},
		{
			City:          "札幌",
			Title:         "大通公園ホットチョコさんぽ",
			Description:   "冬の大通公園をイルミネーションとともに散策し、ホットチョコレートで温まるほっこりデート。",
			ActivityType:  "アウトドア",
			Budget:        "¥",
			Weather:       "雪",
			Mood:          "リラックス",
			DurationHours: 2,
			Highlights:    []string{"イルミネーション", "冬の散歩", "ホットドリンク"},
			IdealSeason:   "冬",
			IdealTime:     "夕方〜夜",
			Tips:          []string{"耐寒グローブを持参", "路面が滑りやすいので靴底に注意"},
		},
		{
			City:            "札幌",
			Title:           "藻岩山ロープウェイ星空ディナー",
			Description:     "藻岩山山頂展望台で星空と夜景を眺めつつ、コースディナーを味わうロマンチックな夜。",
			ActivityType:    "ナイトライフ",
			Budget:          "¥¥¥¥",
			Weather:         "晴れ",
			Mood:            "ロマンチック",
			DurationHours:   4,
			Highlights:      []string{"日本新三大夜景", "山頂レストランのフルコース", "星空観賞"},
			IdealSeason:     "冬〜春",
			IdealTime:       "夜",
			Tips:            []string{"ロープウェイの運休情報を確認", "山頂は冷えるので厚手のコートを"},
			BookingRequired: true,
		},
		{
			City:            "札幌",
			Title:           "円山動物園アフターダーク探検",
			Description:     "閉園後の円山動物園を飼育員のガイドで巡り、夜行性動物の行動観察を楽しむエデュテインメント。",
			ActivityType:    "エデュテインメント",
			Budget:          "¥¥",
			Weather:         "曇り",
			Mood:            "好奇心",
			DurationHours:   3,
			Highlights:      []string{"夜行性動物の生態", "バックヤード見学", "限定グッズ"},
			IdealSeason:     "夏",
			IdealTime:       "夜",
			Tips:            []string{"集合時間に余裕をもって到着", "歩きやすいスニーカーを着用"},
			BookingRequired: true,
		},
		{
			City:          "福岡",
			Title:         "屋台グルメはしごツアー",
			Description:   "中洲エリアの屋台を食べ歩き、地元グルメをとことん味わうカジュアルでにぎやかな夜のおでかけ。",
			ActivityType:  "グルメ",
			Budget:        "¥¥",
			Weather:       "晴れ",
			Mood:          "カジュアル",
			DurationHours: 3,
			Highlights:    []string{"豚骨ラーメン", "焼きラーメン", "地元の人との交流"},
			IdealSeason:   "春〜秋",
			IdealTime:     "夜",
			Tips:          []string{"人気店は行列必至なので2〜3軒目も候補を", "現金の小銭を用意"},
		},
		{
			City:            "福岡",
			Title:           "糸島サンセットグランピング",
			Description:     "糸島の海沿いグランピング施設でバーベキューと焚き火を楽しみ、星空を眺めるアウトドア滞在。",
			ActivityType:    "アウトドア",
			Budget:          "¥¥¥",
			Weather:         "晴れ",
			Mood:            "リラックス",
			DurationHours:   8,
			Highlights:      []string{"海に沈む夕日", "地元食材のBBQ", "個別テントサウナ"},
			IdealSeason:     "春〜秋",
			IdealTime:       "夕方〜夜",
			Tips:            []string{"1か月前の予約で人気日程も確保しやすい", "海風が冷えるのでパーカーを"},
			BookingRequired: true,
		},
		{
			City:            "横浜",
			Title:           "みなとみらい夜景クルーズ",
			Description:     "みなとみらいの夜景を船上から楽しみ、デッキで写真撮影を満喫する特別なデート。",
			ActivityType:    "ナイトライフ",
			Budget:          "¥¥¥",
			Weather:         "晴れ",
			Mood:            "ドラマチック",
			DurationHours:   2,
			Highlights:      []string{"ベイブリッジの夜景", "クルーズディナー", "写真映えスポット"},
			IdealSeason:     "春〜秋",
			IdealTime:       "夜",
			Tips:            []string{"乗船30分前には桟橋に集合", "デッキに出る場合は上着を"},
			BookingRequired: true,
		},
		{
			City:            "横浜",
			Title:           "赤レンガクラフトビール＆ジャズ",
			Description:     "赤レンガ倉庫で開催されるクラフトビールフェスを堪能し、夜はジャズライブハウスで余韻を味わう大人の休日。",
			ActivityType:    "グルメ",
			Budget:          "¥¥",
			Weather:         "曇り",
			Mood:            "カジュアル",
			DurationHours:   5,
			Highlights:      []string{"限定ブルワリー", "フードトラック", "ライブ演奏"},
			IdealSeason:     "春・秋",
			IdealTime:       "午後〜夜",
			Tips:            []string{"ビールフェスはチケット制。早割を利用", "会場は混雑するので待ち合わせは早めに"},
			BookingRequired: true,
		},
		{
			City:          "横浜",
			Title:         "三溪園早朝フォト散策",
			Description:   "開園直後の三溪園を静かに散策し、茶屋で朝粥セットを味わう癒やしのモーニング。",
			ActivityType:  "アウトドア",
			Budget:        "¥",
			Weather:       "晴れ",
			Mood:          "リラックス",
			DurationHours: 3,
			Highlights:    []string{"朝霧に包まれた庭園", "古建築のフォトスポット", "茶屋の朝食"},
			IdealSeason:   "春・秋",
			IdealTime:     "早朝",
			Tips:          []string{"三脚利用は申請が必要", "開園5分前には正門に到着"},
		},
		{
			City:          "名古屋",
			Title:         "徳川園ライトアップ散策",
			Description:   "ライトアップされた日本庭園をゆっくり散策し、歴史と自然を感じるしっとりとした夜のおでかけ。",
			ActivityType:  "カルチャー",
			Budget:        "¥¥",
			Weather:       "晴れ",
			Mood:          "落ち着き",
			DurationHours: 2,
			Highlights:    []string{"ライトアップ庭園", "写真撮影", "和カフェでの休憩"},
			IdealSeason:   "初夏・秋",
			IdealTime:     "夜",
			Tips:          []string{"ライトアップは期間限定。公式サイトで日程確認", "三脚使用は制限あり"},
		},
		{
			City:            "名古屋",
			Title:           "名古屋城ナイトプロジェクション",
			Description:     "名古屋城天守をスクリーンにしたプロジェクションマッピングと和太鼓ライブを楽しむ迫力プログラム。",
			ActivityType:    "カルチャー",
			Budget:          "¥¥¥",
			Weather:         "晴れ",
			Mood:            "ドラマチック",
			DurationHours:   3,
			Highlights:      []string{"3Dプロジェクション", "和太鼓ライブ", "期間限定フード"},
			IdealSeason:     "冬",
			IdealTime:       "夜",
			Tips:            []string{"会場は屋外なので防寒必須", "整理券の配布時間を事前に確認"},
			BookingRequired: true,
		},
		{
			City:            "仙台",
			Title:           "定禅寺通りケヤキ並木ライトアップ散歩",
			Description:     "定禅寺通りのイルミネーションを歩き、終わりにライブハウスでジャズを楽しむ大人の夜。",
			ActivityType:    "カルチャー",
			Budget:          "¥¥",
			Weather:         "雪",
			Mood:            "ロマンチック",
			DurationHours:   3,
			Highlights:      []string{"光のページェント", "ケヤキ並木の幻想的な光", "生演奏ジャズ"},
			IdealSeason:     "冬",
			IdealTime:       "夜",
			Tips:            []string{"防寒具をしっかり", "ライブハウスはドリンクオーダー制"},
			BookingRequired: true,
		},
		{
			City:          "那覇",
			Title:         "首里城周辺の夕景散策",
			Description:   "夕暮れ時の首里城公園を散策し、沖縄の歴史と文化に触れる癒やしのお散歩デート。",
			ActivityType:  "カルチャー",
			Budget:        "¥",
			Weather:       "晴れ",
			Mood:          "リラックス",
			DurationHours: 2,
			Highlights:    []string{"首里城の夕景", "沖縄伝統舞踊の鑑賞", "地元スイーツ"},
			IdealSeason:   "冬〜春",
			IdealTime:     "夕方",
			Tips:          []string{"ライトアップ点灯時間を事前に確認", "階段が多いので歩きやすい靴で"},
		},
		{
			City:            "那覇",
			Title:           "北谷サンライズSUPと朝食",
			Description:     "北谷の海でサンライズSUPを体験したあと、海辺カフェでトロピカルブランチを楽しむ爽快な朝時間。",
			ActivityType:    "アウトドア",
			Budget:          "¥¥",
			Weather:         "晴れ",
			Mood:            "アクティブ",
			DurationHours:   4,
			Highlights:      []string{"朝焼けの海", "SUPインストラクターのサポート", "ローカルスムージー"},
			IdealSeason:     "春〜秋",
			IdealTime:       "早朝",
			Tips:            []string{"水着の上にラッシュガードを着用", "前夜はアルコール控えめに"},
			BookingRequired: true,
		},
		{
			City:          "神戸",
			Title:         "北野異人館カフェ巡り",
			Description:   "北野異人館街でレトロな建物を巡りながら、趣のあるカフェでまったり過ごすおでかけプラン。",
			ActivityType:  "カルチャー",
			Budget:        "¥¥",
			Weather:       "曇り",
			Mood:          "リラックス",
			DurationHours: 3,
			Highlights:    []string{"異人館の建築", "レトロカフェ", "雑貨ショップ"},
			IdealSeason:   "春・秋",
			IdealTime:     "午後",
			Tips:          []string{"北野坂は坂道が多いので歩きやすい靴で", "人気カフェはピーク前に入店"},
		},
		{
			City:            "神戸",
			Title:           "有馬温泉プライベートスパリトリート",
			Description:     "有馬温泉のラグジュアリーホテルで金泉・銀泉の貸切風呂とスパトリートメントを堪能する極上リトリート。",
			ActivityType:    "リラクゼーション",
			Budget:          "¥¥¥¥",
			Weather:         "雨",
			Mood:            "ラグジュアリー",
			DurationHours:   6,
			Highlights:      []string{"貸切露天風呂", "ペアルームスパ", "季節の会席ランチ"},
			IdealSeason:     "冬",
			IdealTime:       "昼〜夕方",
			Tips:            []string{"宿泊とセットで予約すると特典あり", "温泉後は水分補給を忘れずに"},
			BookingRequired: true,
		},
		{
			City:            "神戸",
			Title:           "ハーバーランド夜景フォトツアー",
			Description:     "プロカメラマンと一緒に夜のハーバーランドを巡り、ベイエリアの夜景撮影テクニックを学ぶアクティブプラン。",
			ActivityType:    "アクティビティ",
			Budget:          "¥¥¥",
			Weather:         "晴れ",
			Mood:            "アクティブ",
			DurationHours:   3,
			Highlights:      []string{"モザイク大観覧車", "明石海峡大橋の遠景", "夜景ポートレート"},
			IdealSeason:     "春〜秋",
			IdealTime:       "夜",
			Tips:            []string{"カメラレンタルも可。申し込み時に相談", "雨天延期ポリシーを事前確認"},
			BookingRequired: true,
		},
		{
			City:          "広島",
			Title:         "瀬戸内レモンアイランドサイクリング",
			Description:   "瀬戸内の島を電動アシスト自転車で巡り、レモン農園で収穫体験と海辺カフェでシーフードを味わう爽快な一日。",
			ActivityType:  "アウトドア",
			Budget:        "¥¥",
			Weather:       "晴れ",
			Mood:          "アクティブ",
			DurationHours: 7,
			Highlights:    []string{"しまなみ海道の絶景", "レモン収穫体験", "海沿いカフェランチ"},
			IdealSeason:   "春〜秋",
			IdealTime:     "朝〜夕方",
			Tips:          []string{"フェリーの時刻表を事前確認", "日焼け対策を万全に"},
		},
		{
			City:            "金沢",
			Title:           "ひがし茶屋街着物フォトウォーク",
			Description:     "伝統工芸師の指導で加賀友禅の着付けを体験し、茶屋街でプロカメラマンが同行するフォトウォーク。",
			ActivityType:    "カルチャー",
			Budget:          "¥¥¥",
			Weather:         "晴れ",
			Mood:            "伝統",
			DurationHours:   4,
			Highlights:      []string{"加賀友禅の着付け", "古い町並み", "プロの写真データ"},
			IdealSeason:     "春・秋",
			IdealTime:       "午前〜午後",
			Tips:            []string{"雨天時はスタジオ撮影に切り替え可", "足袋ソックスを持参すると快適"},
			BookingRequired: true,
		},
	}
}

// BuiltinDetails returns the optional practical info blocks, keyed by plan
// title. Only a subset of plans has one; the rest keep Detail nil.
func BuiltinDetails() map[string]domain.ExperienceDetail {
	return map[string]domain.ExperienceDetail{
		"銀座ミシュランディナーと夜景バー": {
			Neighborhood:       "銀座・丸の内",
			MeetingPoint:       "レストラン入口（銀座駅A3出口から徒歩3分）",
			Access:             "東京メトロ銀座線・丸ノ内線・日比谷線 銀座駅",
			Website:            "https://example.com/ginza-dinner",
			Contact:            "03-0000-0000",
			Attire:             "スマートカジュアル以上。デニム・サンダル不可",
			CancellationPolicy: "3日前まで無料。前日50%、当日100%",
			Languages:          []string{"日本語", "英語"},
			SuitableFor:        []string{"記念日", "プロポーズ"},
		},
		"京町家プライベート茶会": {
			Neighborhood:       "京都・御所南",
			MeetingPoint:       "町家玄関前（開始10分前集合）",
			Access:             "京都市営地下鉄 丸太町駅から徒歩7分",
			Website:            "https://example.com/kyoto-chakai",
			Contact:            "075-000-0000",
			Attire:             "白い靴下を着用。ミニスカート不可",
			CancellationPolicy: "前日まで無料。当日100%",
			Languages:          []string{"日本語", "英語"},
			SuitableFor:        []string{"初デート", "海外ゲストの案内"},
		},
		"藻岩山ロープウェイ星空ディナー": {
			Neighborhood: "札幌・藻岩山",
			MeetingPoint: "もいわ山麓駅チケットカウンター",
			Access:       "市電ロープウェイ入口駅から無料シャトルバス",
			Website:      "https://example.com/moiwa-dinner",
			Attire:       "冬季は山頂が氷点下になるため防寒必須",
			Languages:    []string{"日本語"},
			SuitableFor:  []string{"記念日", "夜景好き"},
		},
		"糸島サンセットグランピング": {
			Neighborhood:       "糸島・二見ヶ浦",
			MeetingPoint:       "施設フロント（チェックイン15時〜）",
			Access:             "JR筑前前原駅から送迎バス20分",
			Website:            "https://example.com/itoshima-glamping",
			Contact:            "092-000-0000",
			CancellationPolicy: "7日前まで無料。以降30〜100%",
			Languages:          []string{"日本語", "英語"},
			SuitableFor:        []string{"アウトドア初心者", "グループ"},
		},
		"みなとみらい夜景クルーズ": {
			Neighborhood:       "横浜・みなとみらい",
			MeetingPoint:       "ぷかりさん橋 乗船受付",
			Access:             "みなとみらい線 みなとみらい駅から徒歩5分",
			Website:            "https://example.com/minatomirai-cruise",
			CancellationPolicy: "出航24時間前まで無料",
			Languages:          []string{"日本語", "英語", "中国語"},
			SuitableFor:        []string{"記念日", "写真好き"},
		},
		"北谷サンライズSUPと朝食": {
			Neighborhood: "北谷・サンセットビーチ",
			MeetingPoint: "ビーチハウス前（日の出45分前集合）",
			Access:       "那覇空港から車で40分。駐車場あり",
			Website:      "https://example.com/chatan-sup",
			Contact:      "098-000-0000",
			Attire:       "水着着用の上ラッシュガード推奨",
			Languages:    []string{"日本語", "英語"},
			SuitableFor:  []string{"アクティブ派", "早起きが得意なふたり"},
		},
		"有馬温泉プライベートスパリトリート": {
			Neighborhood:       "神戸・有馬温泉",
			MeetingPoint:       "ホテルフロント",
			Access:             "神戸電鉄有馬温泉駅から徒歩5分。送迎あり",
			Website:            "https://example.com/arima-spa",
			Contact:            "078-000-0000",
			CancellationPolicy: "5日前まで無料。以降50〜100%",
			Languages:          []string{"日本語"},
			SuitableFor:        []string{"記念日", "のんびり過ごしたいふたり"},
		},
		"ひがし茶屋街着物フォトウォーク": {
			Neighborhood:       "金沢・ひがし茶屋街",
			MeetingPoint:       "着付けスタジオ（金沢駅東口から車10分）",
			Access:             "城下まち金沢周遊バス 橋場町下車すぐ",
			Website:            "https://example.com/kanazawa-kimono",
			Attire:             "着付けしやすい襟ぐりの広い肌着を推奨",
			CancellationPolicy: "2日前まで無料",
			Languages:          []string{"日本語", "英語"},
			SuitableFor:        []string{"和装好き", "記念写真を残したいふたり"},
		},
	}
}
