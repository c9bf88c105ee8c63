package catalog

var Genres = []Genre{
	{"Salsa", []string{"Salsa Dura", "Salsa Romántica", "Salsa Urbana", "Salsa Sensual", "Timba (Cuban)", "Salsa Funk", "Salsa Mambo"}},
	{"Bachata", []string{"Bachata Moderna", "Bachata Sensual", "Bachata Dominicana", "Bachata Tradicional", "Bachata Fusion", "Bachata Urban-Trap", "Bachata Pop", "Bachata Guajira", "Bachata Remastered", "Bachata Romántica"}},
	{"Cha Cha", []string{"Ballroom Cha Cha", "Guajira", "Boogaloo", "Latin Pop"}},
	{"Kizomba", []string{"Traditional", "Ghetto Zouk", "Urban Kiz", "Tarraxinha"}},
	{"Merengue", []string{"Merengue de Orquesta", "Merengue Típico", "Mambo", "Techno Merengue"}},
	{"Reggaeton", []string{"Old School", "Modern", "Dembow"}},
	{"Pop", []string{"K-Pop", "Synth Pop", "Acoustic Pop"}},
	{"EDM", []string{"House", "Techno", "Trance"}},
	{"Ballad", []string{"Piano Ballad", "Power Ballad", "Rock Ballad"}},
	{Custom, []string{}},
}

var Moods = []string{
	"Happy & Energetic",
	"Romantic",
	"Passionate",
	"Party / Fiesta",
	"Chill & Relaxed",
	"Groovy",
	"Sexy & Sensual",
	"Traditional",
	"Emotional / Sad",
	"Modern & Stylish",
}

var Instruments = []string{
	"Piano", "Soft Piano", "Synthesizer", "Synth Pads", "Organ",
	"Guitar", "Requinto (Lead Guitar)", "Rhythm Guitar", "Acoustic Guitar", "Electric Guitar FX", "Bass", "Strings",
	"Congas", "Bongos", "Timbales", "Clave", "Cowbell", "Guiro", "Guira", "Maracas", "Drums", "Shaker", "Tambora", "Accordion",
	"Trumpet", "Trombone", "Saxophone", "Brass Section",
	"Backing Vocals", "Chorus", "808 Bass", "Violin", "Cello",
}

var Keys = []string{
	"C", "Cm", "C#", "C#m", "D", "Dm", "Eb", "Ebm", "E", "Em", "F", "Fm",
	"F#", "F#m", "G", "Gm", "Ab", "Abm", "A", "Am", "Bb", "Bbm", "B", "Bm",
}

var VocalTypes = []string{"Male", "Female", "Duet", "Choir", "Instrumental"}

var IntroStyles = []IntroStyle{
	{"1", "부드러운 기타 (Classical)", "가장 인기 많은 방식. 깨끗한 리드 기타가 분위기를 리드하며 안정감을 줌. (실패 없는 선택)", "[Clean Lead Guitar Intro], [Melodic Guitar Start], [Classical Bachata Style]"},
	{"2", "잔잔한 패드 + 기타 (Modern)", "공기감 있는 신스 패드와 얇은 기타 라인. 몽환적이고 로맨틱한 분위기.", "[Dreamy Synth Pad Intro], [Soft Guitar Plucking], [Atmospheric Start], [Modern Romantic]"},
	{"3", "Low Bass + 숨소리 (Sensual)", "심장 같은 \"쿵-\" 베이스와 낮은 보컬 브레스. 섹시하고 텐션이 바로 올라감.", "[Deep Heartbeat Bass Intro], [Breathing ASMR], [Sensual Whisper], [Low Frequency Start]"},
	{"4", "ASMR 속삭임 (Intimate)", "귀에 가까운 속삭임, 손가락 튕김(Snap). 파트너와 거리가 좁아지는 느낌.", "[ASMR Whisper Intro], [Close Mic], [Intimate Sound], [Finger Snaps]"},
	{"5", "Build-Up (Fade-in)", "기타/패드/베이스가 서서히 커지며 몰입. 인스타 리믹스/DJ 버전 스타일.", "[Slow Fade-in], [Gradual Volume Rise], [Atmospheric Build-up]"},
	{"6", "딜레이 기타 + 리버브 (Dramatic)", "여운이 긴 기타 소리와 공간감. 감정의 깊이를 자극하는 감성 스타일.", "[Heavy Reverb Guitar], [Delay Effect], [Dramatic Spacious Intro]"},
	{"7", "스토리 효과음 (Cinematic)", "비, 바람, 파도, 도시 소음 등 환경음으로 시작. 영화적인 몰입감 유도.", "[Rain Sound Effect], [Ocean Waves], [Cinematic Intro], [Ambient Noise Start]"},
}

var ArtStyles = []string{
	"Digital Art", "Photorealistic", "3D Render", "Oil Painting", "Anime/Manga",
	"Watercolor", "Cyberpunk", "Steampunk", "Synthwave", "Vaporwave",
	"Pop Art", "Minimalist", "Abstract", "Surrealism", "Ukiyo-e",
	"Sketch/Pencil", "Gothic", "Renaissance", "Pixel Art", "Graffiti/Street Art",
}

var CharacterSamples = []string{
	"Dancing Couple", "Lonely Silhouette", "Futuristic Robot", "Cat DJ",
	"Tropical Beach", "Neon Cityscape", "Abstract Shapes", "Ancient Warrior",
	"Space Astronaut", "Blooming Flower", "Crowded Club", "Rainy Window",
}

var ImageSizePresets = []ImageSizePreset{
	{0, "Square (1:1)", "1:1", "Instagram Feed, Profile"},
	{1, "Landscape (16:9)", "16:9", "YouTube, Web Banner"},
	{2, "Portrait (9:16)", "9:16", "Stories, Reels, TikTok"},
	{3, "Classic TV (4:3)", "4:3", "Retro, Tablet View"},
	{4, "Classic Photo (3:4)", "3:4", "Standard Print"},
	{5, "Social Post (4:5)", "3:4", "IG Portrait (Crop optimized)"},
	{6, "Wide Link (1.9:1)", "16:9", "FB/Twitter Link Preview"},
	{7, "Cinematic (21:9)", "16:9", "Ultra Widescreen Movie"},
	{8, "Tall Banner (1:2)", "9:16", "Vertical Display Ad"},
	{9, "Circular (1:1)", "1:1", "Sticker, Badge Style"},
}

var FontOptions = []FontOption{
	{"Inter (Modern Standard)", "'Inter', sans-serif"},
	{"Roboto (Clean)", "'Roboto', sans-serif"},
	{"Open Sans (Neutral)", "'Open Sans', sans-serif"},
	{"Montserrat (Geometric)", "'Montserrat', sans-serif"},
	{"Poppins (Friendly)", "'Poppins', sans-serif"},
	{"Lato (Stable)", "'Lato', sans-serif"},
	{"Oswald (Tall & Bold)", "'Oswald', sans-serif"},
	{"Anton (Impact)", "'Anton', sans-serif"},
	{"Bebas Neue (Condensed)", "'Bebas Neue', cursive"},
	{"Playfair Display (Elegant)", "'Playfair Display', serif"},
	{"Merriweather (Readability)", "'Merriweather', serif"},
	{"Abril Fatface (Big Serif)", "'Abril Fatface', cursive"},
	{"Lobster (Retro Script)", "'Lobster', cursive"},
	{"Pacifico (Fun Script)", "'Pacifico', cursive"},
	{"Dancing Script (Handwritten)", "'Dancing Script', cursive"},
	{"Permanent Marker (Marker)", "'Permanent Marker', cursive"},
}

var TextEffects = []TextEffect{
	{"none", "None (Clean)"},
	{"shadow_soft", "Soft Shadow"},
	{"shadow_hard", "Hard Shadow"},
	{"outline_black", "Outline (Black)"},
	{"outline_white", "Outline (White)"},
	{"neon_pink", "Neon Pink"},
	{"neon_blue", "Neon Blue"},
	{"glow_gold", "Golden Glow"},
	{"retro_3d", "Retro 3D"},
	{"fire", "Fire"},
	{"ice", "Ice"},
	{"cyberpunk", "Cyberpunk"},
	{"heavy_metal", "Heavy Metal"},
	{"vintage", "Vintage Letterpress"},
	{"emboss", "Embossed"},
	{"mirror", "Reflection"},
	{"elegant", "Elegant Blur"},
	{"pop_art", "Pop Art"},
	{"hollow", "Hollow"},
	{"glitch", "Glitchy"},
}

var LyricLanguages = []string{
	"Korean & English Mix",
	"Korean Only",
	"English Only",
	"Spanish & English (Latin)",
}

var LyricLengths = []string{
	"Short (~2:00)",
	"Standard (~3:00)",
	"Long (~4:00)",
	"Epic (~5:00+)",
}

var DanceGuides = []DanceGuide{
	{"Salsa", "150 - 220", "Am, Cm, Gm, Dm", "빠르고 에너지가 넘침 (On2 댄서는 180~200 선호)"},
	{"Bachata", "108 - 135", "Bm, C#m, Am, Em", "감성적이고 센슈얼한 흐름 (기타 선율 중요)"},
	{"Kizomba", "80 - 95", "Cm, Bbm, Gm", "느리고 묵직한 베이스 (Ghetto Zouk 스타일)"},
	{"Cha Cha", "110 - 130", "Gm, Dm, Am", "정확한 퍼커션 리듬이 중요"},
	{"Merengue", "130 - 170", "C, G, F", "매우 빠르고 신나는 행진곡 리듬"},
	{"Reggaeton", "90 - 100", "F#m, Am, Em", "묵직한 뎀보우 리듬"},
	{"Pop/Disco", "118 - 128", "C, Am, G", "가장 일반적인 댄스 템포"},
}

// DefaultArtists seeds the cover art artist list.
var DefaultArtists = []string{"DJ Doberman", "MC Sola", "Luna"}

// DefaultExportArtists seeds the metadata draft artist list.
var DefaultExportArtists = []string{"DJ Doberman"}

var DefaultSamplePrompts = []SamplePrompt{
	{"💛 Sensual Bachata", "[Percussive Intro], [Steady Beat], Sensual bachata, 72 BPM, key B minor, Smooth requinto guitar, soft 808 bass, warm pad chords, gentle percussion, deep reverb. Modern bachata groove. Perfect for sensual dancing."},
	{"💙 Urban Bachata", "[Percussive Intro], [Steady Beat], Urban bachata, 74 BPM, key A minor. Electric guitar riff, 808 sub bass, rhythmic hihats, trap-influenced drums, smooth R&B pads, clean mix, energetic drop. Modern city-night bachata style."},
	{"🤎 Romantic Traditional Mix", "[Percussive Intro], [Steady Beat], Romantic modern-traditional bachata, 86 BPM, key D minor. Requinto melody, acoustic rhythm guitar, bongo and güira, warm bass guitar, soft pads for atmosphere. Clean, emotional, classic dance-floor vibe."},
	{"🗽 Classic NY Mambo Break Edition", "New York ON2 salsa with bright brass, sharp piano montuno, deep congas, and timbales. Add a dancer-friendly structure: intro → main groove → musical break → mambo horns. Include call-and-response between brass and piano. Tight rhythm, energetic, perfect for social dancing. BPM 94, Key Am."},
	{"💃 NY Mambo (ON2 Friendly)", "[Percussive Intro], [Steady Beat], New York Mambo, 92 BPM, Key Am. Elegant and rhythmic. Piano montuno, light conga, bongo, clave. Strict metronomic timing. Classic brass hits. Clean ending. No pop influence."},
}

// GenreDefaults seeds the instruments of a newly created project.
var GenreDefaults = map[string][]string{
	"Salsa": {"Congas", "Bongos", "Timbales", "Clave", "Bass", "Piano", "Trumpet", "Trombone", "Saxophone", "Cowbell", "Guiro", "Maracas", "Backing Vocals"},
	"Bachata": {"Requinto (Lead Guitar)", "Rhythm Guitar", "Bass", "Bongos", "Guira", "Strings", "Synth Pads", "Soft Piano", "Electric Guitar FX"},
	"Cha Cha": {"Guiro", "Congas", "Timbales (Cha Cha Bell)", "Piano", "Bass", "Cowbell", "Brass Section", "Flute"},
	"Kizomba": {"Synthesizer", "Zouk Beat (Drums)", "Deep Bass", "Synth Pads", "Electric Guitar", "Vocals"},
	"Merengue": {"Tambora", "Guira", "Accordion", "Saxophone", "Trumpet", "Bass", "Piano"},
	"Reggaeton": {"Synthesizer", "Dembow Beat (Drums)", "Deep Bass", "Piano"},
	"Pop": {"Drums", "Bass", "Synthesizer", "Guitar", "Piano", "Backing Vocals"},
	"EDM": {"Synthesizer", "Drum Machine", "Bass", "FX", "Piano"},
	"Ballad": {"Piano", "Strings", "Acoustic Guitar", "Bass"},
	"Custom": {"Drums", "Bass", "Piano", "Synthesizer"},
}

// BlockSamples are suggested descriptions per section type.
var BlockSamples = map[string][]string{
	"Intro": {
		"Percussion Intro (Dance Friendly)",
		"Full Band Hit (Immediate Start)",
		"Count-in (1-2-3-4)",
		"Instrumental Hook Intro",
		"DJ Friendly Intro (Percussion only)",
		"Piano Montuno & Percussion",
	},
	"Verse": {
		"Story begins, rhythmic flow",
		"Melodic storytelling (On-beat)",
		"Rap verse with minimal beat",
		"Building tension",
		"Main Groove (Tight, Elegant)",
	},
	"Chorus": {
		"Main hook, high energy",
		"Anthemic sing-along",
		"Catchy melody repetition",
		"Harmonized vocals",
		"Powerful drop lead-in",
		"Brass Theme (Short Punchy Phrases)",
	},
	"Bridge": {
		"Emotional slowdown",
		"Key change transition",
		"Instrumental breakdown",
		"Acapella section",
		"Build up to final chorus",
		"Montuno (Call & Response)",
	},
	"Drop": {
		"High energy dance section",
		"Heavy bass drop",
		"Synth lead solo",
		"Percussion break",
		"Break + Sharp Brass HIT",
		"Tarraxinha (Bass Focus)",
	},
	"Instrumental": {
		"Guitar Solo",
		"Piano Montuno",
		"Brass Mambo Section",
		"Synth Lead Solo",
		"Percussion Break",
		"Montuno 2 (Peak Energy)",
		"Jaleo (High Energy Brass)",
	},
	"Outro": {
		"Fade out",
		"Repeat chorus line",
		"Instrumental solo finish",
		"Abrupt ending",
		"DJ Friendly Outro (Beat loop)",
		"Clean Ending (Piano + Percussion)",
	},
}

// StructureTemplates in display order. Custom has no blocks.
var StructureTemplates = []StructureTemplate{
	{Name: "Custom"},
	{Name: "Cha Cha: Ballroom Classic", Blocks: []Block{
		{"Intro", "Percussion & Cowbell Start (4 bars)", 4},
		{"Verse", "Playful Vocals", 16},
		{"Chorus", "Catchy Hook", 8},
		{"Instrumental", "Break (Stop & Go)", 4},
		{"Verse", "Verse 2", 16},
		{"Chorus", "Main Hook", 8},
		{"Bridge", "Piano Montuno", 8},
		{"Chorus", "Final Hook", 8},
		{"Outro", "Clean Finish (Cha-cha-cha)", 4},
	}},
	{Name: "Cha Cha: Latin Pop", Blocks: []Block{
		{"Intro", "Pop Synth & Percussion", 8},
		{"Verse", "Pop Style Verse", 16},
		{"Chorus", "Anthemic Chorus", 8},
		{"Verse", "Verse 2", 16},
		{"Chorus", "Anthemic Chorus", 8},
		{"Instrumental", "Guitar/Synth Solo", 8},
		{"Chorus", "Final Chorus", 8},
		{"Outro", "Fade out", 8},
	}},
	{Name: "Kizomba: Traditional Flow", Blocks: []Block{
		{"Intro", "Beat start (Strong 1)", 8},
		{"Verse", "Storytelling (Smooth)", 16},
		{"Chorus", "Melodic Hook", 8},
		{"Verse", "Verse 2", 16},
		{"Chorus", "Melodic Hook", 8},
		{"Instrumental", "Guitar/Synth Melody", 8},
		{"Chorus", "Final Hook", 8},
		{"Outro", "Beat loop fade", 8},
	}},
	{Name: "Kizomba: Urban / Ghetto Zouk", Blocks: []Block{
		{"Intro", "Atmospheric & Bass", 8},
		{"Verse", "R&B Style Vocals", 16},
		{"Chorus", "Catchy Hook", 8},
		{"Drop", "Tarraxinha (Bass Focus)", 8},
		{"Verse", "Verse 2", 16},
		{"Chorus", "Hook", 8},
		{"Drop", "Tarraxinha (Heavier Bass)", 8},
		{"Outro", "Fade out", 8},
	}},
	{Name: "Merengue: Orquesta (High Energy)", Blocks: []Block{
		{"Intro", "Explosive Brass (Jaleo)", 8},
		{"Verse", "Fast Paced Singing", 16},
		{"Chorus", "Call & Response (Coro)", 8},
		{"Verse", "Verse 2", 16},
		{"Chorus", "Call & Response", 8},
		{"Instrumental", "Mambo (Saxophone Solo)", 16},
		{"Instrumental", "Jaleo (Brass Climax)", 8},
		{"Outro", "Tight Ending", 4},
	}},
	{Name: "Merengue: Típico (Accordion)", Blocks: []Block{
		{"Intro", "Paseo (Accordion Walk)", 8},
		{"Verse", "Traditional Singing", 16},
		{"Chorus", "Coro", 8},
		{"Instrumental", "Accordion Solo (Fast)", 16},
		{"Chorus", "Coro", 8},
		{"Bridge", "Percussion Break", 4},
		{"Instrumental", "Jaleo (Fast)", 16},
		{"Outro", "Accordion Finish", 4},
	}},
	{Name: "Standard Pop (3:00)", Blocks: []Block{
		{"Intro", "Instrumental build up", 4},
		{"Verse", "Story begins", 16},
		{"Chorus", "Main hook", 8},
		{"Verse", "Story develops", 16},
		{"Chorus", "Main hook", 8},
		{"Bridge", "Emotional peak", 8},
		{"Chorus", "Final powerful hook", 8},
		{"Outro", "Fade out", 4},
	}},
	{Name: "Hip-Hop / Rap (2:30)", Blocks: []Block{
		{"Intro", "Beat start", 4},
		{"Chorus", "Main Hook", 8},
		{"Verse", "Verse 1 (16 bars)", 16},
		{"Chorus", "Hook", 8},
		{"Verse", "Verse 2 (16 bars)", 16},
		{"Chorus", "Hook", 8},
		{"Outro", "Fade out", 4},
	}},
	{Name: "Viral Short (TikTok)", Blocks: []Block{
		{"Chorus", "Hook immediately", 8},
		{"Verse", "Quick context", 8},
		{"Chorus", "Hook repetition", 8},
	}},
	{Name: "Extended Club Mix", Blocks: []Block{
		{"Intro", "DJ Intro (Percussion)", 8},
		{"Verse", "Minimal vocals", 8},
		{"Drop", "Main Drop", 8},
		{"Bridge", "Breakdown", 8},
		{"Drop", "Second Drop", 8},
		{"Outro", "DJ Outro", 8},
	}},
	{Name: "Salsa On2 (Classic)", Blocks: []Block{
		{"Intro", "Percussion & Brass buildup", 8},
		{"Verse", "Cuerpo (Storytelling)", 16},
		{"Chorus", "Coro (Main Hook)", 8},
		{"Verse", "Cuerpo (Development)", 16},
		{"Chorus", "Coro (Main Hook)", 8},
		{"Bridge", "Montuno (Call & Response)", 16},
		{"Instrumental", "Mambo (Horn Section)", 8},
		{"Chorus", "Coro Final", 8},
		{"Outro", "Moña & Fade out", 8},
	}},
	{Name: "Salsa Dura (Heavy Brass)", Blocks: []Block{
		{"Intro", "Powerful Brass & Percussion Hit", 8},
		{"Verse", "Cuerpo (Storytelling)", 16},
		{"Chorus", "Coro (Main Hook)", 8},
		{"Verse", "Cuerpo (Development)", 16},
		{"Chorus", "Coro", 8},
		{"Bridge", "Montuno (Call & Response)", 16},
		{"Instrumental", "Mambo (Horn Section Solo)", 8},
		{"Instrumental", "Percussion Solo (Timbales)", 8},
		{"Chorus", "Coro Final", 8},
		{"Outro", "Moña (Instrumental Brass Break)", 8},
	}},
	{Name: "Salsa Romántica (Melodic)", Blocks: []Block{
		{"Intro", "Soft Piano & Saxophone", 8},
		{"Verse", "Romantic Vocals (Verse 1)", 16},
		{"Chorus", "Catchy Melodic Hook", 8},
		{"Verse", "Romantic Vocals (Verse 2)", 16},
		{"Chorus", "Catchy Melodic Hook", 8},
		{"Bridge", "Emotional Build-up", 8},
		{"Chorus", "Final Hook", 8},
		{"Outro", "Smooth Fade Out", 8},
	}},
	{Name: "Salsa Urbana (Modern)", Blocks: []Block{
		{"Intro", "Synth & Beat Intro", 4},
		{"Verse", "R&B Style Vocals", 16},
		{"Chorus", "Pop-influenced Hook", 8},
		{"Verse", "Rap/Flow Section", 16},
		{"Chorus", "Hook", 8},
		{"Drop", "Dance Break (Urban Beat)", 8},
		{"Chorus", "Final Hook", 8},
		{"Outro", "DJ Style Outro", 4},
	}},
	{Name: "Salsa Sensual", Blocks: []Block{
		{"Intro", "Atmospheric Pads & Piano", 8},
		{"Verse", "Soft & Breath-y Vocals", 16},
		{"Chorus", "Melodic Hook", 8},
		{"Instrumental", "Smooth Body Roll Section", 8},
		{"Verse", "Building Passion", 16},
		{"Chorus", "Final Hook", 8},
		{"Outro", "Gentle End", 8},
	}},
	{Name: "Timba (Cuban Style)", Blocks: []Block{
		{"Intro", "Complex Rhythmic Intro", 8},
		{"Verse", "Tema (Main Theme)", 16},
		{"Chorus", "Coro", 8},
		{"Instrumental", "Bloque (Rhythmic Break)", 4},
		{"Bridge", "Montuno 1 (Call & Response)", 16},
		{"Drop", "Despelote (Funky/Polyrythmic)", 8},
		{"Bridge", "Montuno 2 (Higher Energy)", 16},
		{"Outro", "Coda (Big Finish)", 8},
	}},
	{Name: "Salsa Funk/Fusion", Blocks: []Block{
		{"Intro", "Funky Bass & Guitar Riff", 8},
		{"Verse", "Groovy Vocals", 16},
		{"Chorus", "Energetic Hook", 8},
		{"Instrumental", "Funk Break (Bass Solo)", 8},
		{"Bridge", "Montuno with Rock Guitar", 16},
		{"Chorus", "Final Hook", 8},
		{"Outro", "Jam Session Fade", 8},
	}},
	{Name: "Salsa Mambo (New York Style)", Blocks: []Block{
		{"Intro", "Jazz-influenced Brass Intro", 8},
		{"Verse", "Cuerpo (Storytelling)", 16},
		{"Chorus", "Coro (Main Hook)", 8},
		{"Verse", "Cuerpo (Development)", 16},
		{"Chorus", "Coro", 8},
		{"Bridge", "Montuno (Piano/Bongo focus)", 16},
		{"Instrumental", "Mambo Section (Complex Brass)", 16},
		{"Instrumental", "Moña (Improvised Brass)", 8},
		{"Chorus", "Coro Final", 8},
		{"Outro", "Sharp Jazz Finish", 4},
	}},
	{Name: "New York Mambo (ON2 Friendly)", Blocks: []Block{
		{"Intro", "Piano Montuno & Percussion (Clear Timing)", 4},
		{"Verse", "Main Groove (Tight, Elegant)", 16},
		{"Chorus", "Brass Theme (Short Punchy Phrases)", 8},
		{"Verse", "Groove Variation (Steady Piano)", 8},
		{"Bridge", "Montuno 1 (Call & Response)", 8},
		{"Drop", "Break + Sharp Brass HIT", 4},
		{"Instrumental", "Montuno 2 (Peak Energy)", 16},
		{"Outro", "Clean Ending (Piano + Percussion)", 8},
	}},
	{Name: "Bachata: Modern Sensual", Blocks: []Block{
		{"Intro", "Requinto melodic solo", 8},
		{"Verse", "Soft vocals, romantic", 16},
		{"Chorus", "Catchy Hook", 8},
		{"Verse", "Building tension", 16},
		{"Chorus", "Catchy Hook", 8},
		{"Instrumental", "Mambo (Guitar Solo)", 8},
		{"Drop", "Bass & Percussion Break", 4},
		{"Chorus", "Final Hook", 8},
		{"Outro", "Guitar fade out", 4},
	}},
	{Name: "Bachata: Classic Sensual", Blocks: []Block{
		{"Intro", "Simple & Romantic (Soft)", 8},
		{"Verse", "Emotional Storytelling", 16},
		{"Chorus", "Melodic Hook", 8},
		{"Verse", "Story Deepens", 16},
		{"Chorus", "Melodic Hook", 8},
		{"Bridge", "Smooth Transition", 8},
		{"Chorus", "Final Hook", 8},
		{"Outro", "Gentle Fade", 4},
	}},
	{Name: "Bachata: Fusion (Zouk/R&B)", Blocks: []Block{
		{"Intro", "Atmospheric Synth Start", 8},
		{"Verse", "R&B Style Vocals", 16},
		{"Chorus", "Hook with Bass Drop", 8},
		{"Instrumental", "Body Roll Section (Beat Stop)", 4},
		{"Verse", "Building Tension", 8},
		{"Chorus", "Explosive Hook", 8},
		{"Bridge", "Zouk Flow (Fluid rhythm)", 8},
		{"Outro", "Slow fade", 8},
	}},
	{Name: "Bachata: Urban (Hip-Hop)", Blocks: []Block{
		{"Intro", "Heavy Bass & Trap Hat hints", 4},
		{"Verse", "Rap/Singing Flow (Swag)", 16},
		{"Chorus", "Catchy & Rhythmic Hook", 8},
		{"Verse", "Dynamic Verse (Accents)", 16},
		{"Chorus", "Hook", 8},
		{"Drop", "Street Style Drop (Heavy Beat)", 8},
		{"Outro", "Abrupt Finish or DJ Loop", 4},
	}},
	{Name: "Bachata: Latin Pop", Blocks: []Block{
		{"Intro", "Pop Synth Intro", 4},
		{"Verse", "Pop Vocal Melody", 8},
		{"Chorus", "Anthemic Hook (Sing-along)", 8},
		{"Verse", "Verse 2", 8},
		{"Chorus", "Anthemic Hook", 8},
		{"Bridge", "Dreamy Vocal Layering", 8},
		{"Chorus", "Final Powerful Chorus", 8},
		{"Outro", "Radio Edit Fade", 4},
	}},
	{Name: "Bachata: Deep Passion (Erotic)", Blocks: []Block{
		{"Intro", "Minimalist, Breathing, Close Mic", 8},
		{"Verse", "Whisper Vocals, Slow build", 16},
		{"Chorus", "Deep Emotional Hook (Low energy)", 8},
		{"Verse", "Intimate Storytelling", 16},
		{"Bridge", "Silence / Heartbeat / Tension", 4},
		{"Chorus", "Deep Hook", 8},
		{"Outro", "Lingering Note", 8},
	}},
	{Name: "Bachata: Slow Flow", Blocks: []Block{
		{"Intro", "Very Slow, Melodic (105 BPM style)", 8},
		{"Verse", "Long drawn-out notes", 16},
		{"Chorus", "Wave-like flow", 16},
		{"Instrumental", "Slow Guitar & Isolations", 8},
		{"Chorus", "Emotional Peak", 16},
		{"Outro", "Gentle ending", 8},
	}},
}

// GenrePresets lists the BPM/key/instrument bundles of every genre.
var GenrePresets = map[string][]GenrePreset{
	"Salsa": {
		{"🔥 Salsa Dura (Fast & Aggressive)", 180, "Am", []string{"Trumpet", "Trombone", "Timbales", "Congas", "Piano", "Bass"}},
		{"❤️ Salsa Romántica (Medium)", 90, "Cm", []string{"Piano", "Synthesizer", "Trombone", "Congas", "Guiro", "Backing Vocals"}},
		{"🇨🇺 Timba (Cuban Style)", 98, "Gm", []string{"Drums", "Timbales", "Bass", "Piano", "Brass Section"}},
		{"🎸 Son Montuno (Traditional)", 82, "Dm", []string{"Acoustic Guitar", "Bongos", "Trumpet", "Bass", "Clave"}},
		{"🏙️ Salsa Urbana (Modern)", 95, "Fm", []string{"Synthesizer", "Drum Machine", "Trombone", "Congas", "Piano"}},
		{"🇨🇴 Salsa Colombiana (Fast)", 190, "Em", []string{"Fast Piano", "Trumpet", "Cowbell", "Congas", "Timbales"}},
		{"🕺 Boogaloo (60s NYC)", 120, "G", []string{"Piano", "Hand Claps", "Trumpet", "Bass", "Timbales"}},
		{"🌊 Salsa Choke (Urban/Pacific)", 110, "Bm", []string{"Marimba", "Urban Beats", "Congas", "Synthesizer"}},
		{"🎷 Latin Jazz Salsa", 160, "Dm", []string{"Saxophone", "Trumpet", "Double Bass", "Piano", "Congas"}},
		{"🗽 Mambo (On2 NYC Style)", 140, "Cm", []string{"Vibraphone", "Timbales", "Congas", "Bongos", "Bass", "Piano"}},
	},
	"Bachata": {
		{"🇩🇴 Dominican Bachata (Traditional)", 135, "Bm", []string{"Requinto (Lead Guitar)", "Rhythm Guitar", "Bongos", "Guira", "Bass"}},
		{"💖 Sensual Bachata (Modern)", 108, "Am", []string{"Synthesizer", "Synth Pads", "Requinto (Lead Guitar)", "Bass", "Bongos"}},
		{"🏙️ Urban Bachata (Pop Fusion)", 118, "Em", []string{"Electric Guitar FX", "Synthesizer", "Drum Machine", "Bass"}},
		{"🌹 Bachata Rosa (90s Romantic)", 125, "Dm", []string{"Acoustic Guitar", "Bongos", "Guira", "Synth Strings", "Bass"}},
		{"🤠 Bachata Guajira (Country Style)", 115, "G", []string{"Requinto", "Accordion", "Bongos", "Guira", "Bass"}},
		{"🤖 Tech-Bachata (Electronic)", 110, "Fm", []string{"Synthesizer", "Electronic Drums", "Requinto", "Deep Bass"}},
		{"🌑 Dark Bachata (Moody)", 105, "C#m", []string{"Distorted Guitar", "Atmospheric Pads", "Heavy Bass", "Bongos"}},
		{"🎸 Acoustic Bachata (Unplugged)", 112, "E", []string{"Acoustic Guitar", "Cajon", "Shaker", "Double Bass"}},
		{"📻 Pop Bachata (Radio Friendly)", 120, "C", []string{"Electric Guitar", "Piano", "Drums", "Guira", "Bass"}},
		{"💃 Bachata Tango (Fusion)", 115, "Gm", []string{"Bandoneon", "Requinto", "Violin", "Piano", "Bass"}},
	},
	"Cha Cha": {
		{"💃 Ballroom Cha Cha (Strict)", 120, "Gm", []string{"Guiro", "Cowbell", "Congas", "Piano", "Brass Section"}},
		{"🎤 Latin Pop Cha Cha", 115, "Dm", []string{"Drums", "Synthesizer", "Electric Guitar", "Bass"}},
		{"🌴 Guajira Cha Cha (Slow)", 105, "Am", []string{"Flute", "Violin", "Acoustic Guitar", "Guiro", "Congas"}},
		{"🕺 Boogaloo Cha Cha (Funky)", 125, "F", []string{"Piano", "Trumpet", "Hand Claps", "Bass", "Timbales"}},
		{"🇨🇺 Cuban Cha Cha Chá (Traditional)", 118, "D", []string{"Flute", "Violins", "Piano", "Timbales", "Guiro"}},
		{"🎸 Rock Cha Cha (Santana Style)", 122, "Am", []string{"Electric Guitar", "Hammond Organ", "Drums", "Congas", "Cowbell"}},
		{"⚡ Electro Cha Cha", 124, "Cm", []string{"Synthesizer", "Drum Machine", "Cowbell", "Bass", "FX"}},
		{"🍸 Lounge Cha Cha", 110, "Em", []string{"Vibraphone", "Soft Drums", "Double Bass", "Piano"}},
		{"🎷 Jazz Cha Cha", 116, "Bb", []string{"Saxophone", "Piano", "Double Bass", "Drums", "Congas"}},
		{"🎺 Big Band Cha Cha", 126, "Eb", []string{"Brass Section", "Saxophone Section", "Piano", "Drums", "Double Bass"}},
	},
	"Kizomba": {
		{"🇦🇴 Traditional Kizomba (Angola)", 85, "Cm", []string{"Synthesizer", "Drums", "Bass", "Electric Guitar"}},
		{"🎧 Ghetto Zouk / Tarraxinha", 90, "Bbm", []string{"Deep Bass", "Synthesizer", "Drum Machine", "FX"}},
		{"🌆 Urban Kiz (Modern)", 80, "Fm", []string{"Synth Pads", "Deep Bass", "Electronic Drums", "Piano"}},
		{"💞 Kizomba Fusion (R&B)", 82, "Am", []string{"Soft Piano", "Synth Pads", "Snap", "Deep Bass"}},
		{"🏃 Semba (Fast/Roots)", 105, "G", []string{"Acoustic Guitar", "Percussion", "Bass", "Trumpet"}},
		{"🐌 Tarraxa (Slow Bass)", 75, "Dm", []string{"Sub Bass", "Minimal Drums", "Atmospheric FX"}},
		{"🏠 Afro-House Fusion", 120, "Em", []string{"Heavy Drums", "Shaker", "Synthesizer", "Chanting Vocals"}},
		{"🔊 Zouk Bass (Club)", 95, "Gm", []string{"Distorted Bass", "Drop Synth", "Heavy Kick"}},
		{"🎸 Acoustic Kizomba", 84, "D", []string{"Acoustic Guitar", "Cajon", "Shaker", "Bass"}},
		{"🎻 Instrumental Kizomba", 80, "Bm", []string{"Violin", "Piano", "Synth Pads", "Zouk Beat"}},
	},
	"Merengue": {
		{"🎺 Merengue de Orquesta (80s)", 150, "C", []string{"Trumpet", "Saxophone", "Tambora", "Guira", "Piano", "Bass"}},
		{"🪗 Merengue Típico (Accordion)", 160, "G", []string{"Accordion", "Tambora", "Guira", "Bass", "Saxophone"}},
		{"🕺 Mambo Merengue", 140, "Am", []string{"Brass Section", "Piano", "Drums", "Bass"}},
		{"💻 Techno Merengue", 145, "F", []string{"Synthesizer", "Drum Machine", "Sequencer", "Tambora"}},
		{"🏠 Merengue House (90s)", 135, "Dm", []string{"House Beat", "Piano Montuno", "Tambora", "Vocals"}},
		{"🏙️ Merengue Urbano", 130, "Em", []string{"Reggaeton Beat", "Synthesizer", "Tambora", "Guira"}},
		{"🐢 Pambiche (Slow Traditional)", 120, "D", []string{"Accordion", "Tambora", "Guira", "Bass"}},
		{"❤️ Merengue Romántico", 125, "Bb", []string{"Soft Synth", "Piano", "Saxophone", "Tambora", "Bass"}},
		{"⚡ Electro Mambo", 155, "Gm", []string{"Electronic Drums", "Fast Piano", "Brass Synths", "Bass"}},
		{"🎭 Carnival Merengue (Fastest)", 170, "C", []string{"Whistle", "Marching Drums", "Trumpet", "Trombone", "Saxophone"}},
	},
	"Reggaeton": {
		{"🧢 Old School (Dembow)", 94, "Am", []string{"Synthesizer", "Drums", "Bass"}},
		{"⛓️ Modern Reggaeton", 90, "Em", []string{"Synthesizer", "Synth Pads", "Deep Bass", "FX"}},
		{"🌑 Dark Reggaeton (Trap)", 88, "Fm", []string{"Heavy Bass", "Distorted Synth", "Trap Hi-hats", "Drums"}},
		{"💖 Romantic Reggaeton", 85, "G", []string{"Acoustic Guitar", "Soft Synth", "Dembow Beat", "Piano"}},
		{"🍑 Perreo (Club Banger)", 96, "Bm", []string{"Aggressive Synth", "Hard Kick", "Snare", "Sub Bass"}},
		{"🌴 Tropical Reggaeton", 92, "D", []string{"Steel Drum", "Marimba", "Dembow Beat", "Bass"}},
		{"⚡ Moombahton Fusion", 108, "Cm", []string{"Dutch House Synth", "Reggaeton Beat", "Vocal Chops"}},
		{"🌍 Reggaeton Pop (Global)", 95, "F", []string{"Clean Synth", "Guitar", "Pop Drums", "Bass"}},
		{"🔫 Malianteo (Street)", 90, "C#m", []string{"Orchestral Hits", "Minor Piano", "Heavy Bass", "Gunshots FX"}},
		{"🚀 Futuristic Reggaeton", 98, "Am", []string{"Arpeggiator", "Sci-fi FX", "Metallic Drums", "Bass"}},
	},
	"Pop": {
		{"✨ Upbeat Dance Pop", 124, "C", []string{"Synthesizer", "Drums", "Bass", "Electric Guitar"}},
		{"🎸 Acoustic Pop", 85, "G", []string{"Acoustic Guitar", "Piano", "Bass", "Shaker"}},
		{"🌟 K-Pop Style", 130, "Fm", []string{"Synthesizer", "Bass", "Drums", "Vocals"}},
		{"🎹 Synth Pop (80s Retro)", 118, "Am", []string{"Vintage Synths", "Drum Machine", "Chorus Guitar", "Bass"}},
		{"📼 Indie Pop (Lo-fi)", 90, "D", []string{"Clean Electric Guitar", "Lo-fi Drums", "Synth Pad", "Bass"}},
		{"⚡ Power Pop", 120, "E", []string{"Distorted Guitar", "Rock Drums", "Bass", "Synthesizer"}},
		{"💃 Latin Pop", 105, "Dm", []string{"Classical Guitar", "Percussion", "Trumpet", "Bass"}},
		{"🛏️ Bedroom Pop", 80, "Fmaj7", []string{"Wobbly Synth", "Drum Machine", "Muted Guitar", "Bass"}},
		{"⚡ Electro Pop", 128, "Gm", []string{"Heavy Synth", "Sidechain Bass", "Electronic Drums"}},
		{"🎹 Ballad Pop", 72, "Bb", []string{"Grand Piano", "Strings", "Soft Drums", "Bass"}},
	},
	"EDM": {
		{"🏠 House / Deep House", 124, "Am", []string{"Synthesizer", "Drum Machine", "Bass", "Piano"}},
		{"🚀 Trance / Techno", 138, "Gm", []string{"Synthesizer", "Drum Machine", "FX", "Bass"}},
		{"🌊 Chill EDM", 100, "Cm", []string{"Synth Pads", "Soft Piano", "Deep Bass", "Drums"}},
		{"🔮 Future Bass", 150, "F", []string{"Supersaw Chords", "Vocal Chops", "808 Bass", "Trap Drums"}},
		{"🔊 Dubstep / Trap", 140, "Em", []string{"Wobble Bass", "Sub Bass", "Snare", "Synth Lead"}},
		{"🎹 Progressive House", 128, "D", []string{"Pluck Synth", "Pad", "Saw Lead", "Drums"}},
		{"🌴 Tropical House", 115, "G", []string{"Pan Flute", "Marimba", "Snap", "Soft Kick"}},
		{"🥁 Drum & Bass", 174, "Fm", []string{"Fast Breakbeat", "Reese Bass", "Atmospheric Pad"}},
		{"🏟️ Big Room (Festival)", 128, "F#m", []string{"Huge Kick", "Minimal Drop", "Reverb Synth"}},
		{"🌌 Ambient / Downtempo", 90, "Am", []string{"Drone", "Field Recordings", "Soft Piano", "Sub Bass"}},
	},
	"Ballad": {
		{"🎹 Piano Ballad", 70, "C", []string{"Piano", "Strings", "Cello"}},
		{"🎸 Power Ballad", 75, "D", []string{"Electric Guitar", "Drums", "Bass", "Synthesizer", "Piano"}},
		{"🍂 Acoustic Love Song", 80, "E", []string{"Acoustic Guitar", "Strings", "Bass"}},
		{"🎻 Orchestral Ballad", 68, "G", []string{"Full Orchestra", "Piano", "Timpani", "Harp"}},
		{"🎤 R&B Ballad", 65, "Bb", []string{"Rhodes Piano", "Snap", "Sub Bass", "Synth Pad"}},
		{"🎬 Cinematic Ballad", 60, "Dm", []string{"Piano", "Epic Strings", "Taiko Drums", "Choir"}},
		{"🌲 Folk Ballad", 78, "A", []string{"Acoustic Guitar", "Banjo", "Fiddle", "Bass"}},
		{"🎷 Soul Ballad", 70, "F", []string{"Organ", "Clean Guitar", "Bass", "Drums", "Horns"}},
		{"🍸 Jazz Ballad", 60, "Eb", []string{"Grand Piano", "Brush Drums", "Double Bass", "Saxophone"}},
		{"🏙️ Modern Pop Ballad", 72, "C", []string{"Piano", "Synthesizer", "Electronic Drums", "Strings"}},
	},
	"Custom": {
		{"🥁 Standard Rock/Pop", 100, "C", []string{"Drums", "Bass", "Piano", "Guitar"}},
		{"☕ Slow & Chill", 75, "Am", []string{"Piano", "Synth Pads", "Bass"}},
		{"⚡ Fast & Energetic", 140, "Em", []string{"Synthesizer", "Drums", "Bass"}},
		{"🎷 Jazz Standard", 120, "Bb", []string{"Piano", "Double Bass", "Drums", "Saxophone"}},
		{"🎸 Blues Rock", 110, "A", []string{"Electric Guitar", "Bass", "Drums", "Harmonica"}},
		{"📼 Lo-fi Hip Hop", 80, "F#m", []string{"Piano", "Lo-fi Drums", "Vinyl Crackle", "Bass"}},
		{"🎻 Classical / Orchestral", 90, "D", []string{"Violins", "Cellos", "Brass", "Woodwinds"}},
		{"🕺 Funk / Disco", 120, "E", []string{"Funky Guitar", "Slap Bass", "Drums", "Strings"}},
		{"🤠 Country / Folk", 100, "G", []string{"Acoustic Guitar", "Pedal Steel", "Bass", "Drums"}},
		{"🧪 Experimental", 130, "C", []string{"Modular Synth", "Glitch FX", "Distortion", "Noise"}},
	},
}
