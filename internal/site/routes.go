package site

var primaryColorSteps = []string{
	"Open the test and press the fullscreen button.",
	"Look over the whole panel from a normal viewing distance.",
	"Any dot that does not match the surrounding color is a stuck or dead pixel.",
}

// routes is the single table every page, link and sitemap record is built from.
var routes = []Route{
	{
		Path:        "/",
		Title:       "Display Test - Free Online Monitor and Screen Tests",
		Description: "Free browser based tools to check monitors, laptops and phones for dead pixels, backlight bleed, color banding and more.",
		Keywords:    []string{"monitor test", "screen test", "dead pixel test", "display test"},
		Template:    "home",
		ChangeFreq:  Weekly,
		Priority:    1.0,
		Nav: &NavEntry{
			Label:       "Home",
			Icon:        "⌂",
			Description: "All display tests",
			Category:    CategoryCompany,
		},
	},
	{
		Path:        "/dead-pixel-test",
		Title:       "Dead Pixel Test - Find Stuck and Dead Pixels",
		Description: "Cycle through solid colors fullscreen to find dead, stuck and hot pixels on any screen.",
		Keywords:    []string{"dead pixel test", "stuck pixel", "pixel checker"},
		Template:    "tool",
		ChangeFreq:  Monthly,
		Priority:    0.9,
		Nav: &NavEntry{
			Label:       "Dead Pixel Test",
			Icon:        "◉",
			Description: "Find dead and stuck pixels",
			Category:    CategoryTool,
		},
		Tool: &Tool{
			Colors: []string{"#000000", "#ffffff", "#ff0000", "#00ff00", "#0000ff"},
			Steps: []string{
				"Clean the screen so dust is not mistaken for a defect.",
				"Enter fullscreen and click anywhere to move to the next color.",
				"A dead pixel stays black on every color, a stuck pixel stays one color.",
			},
		},
	},
	{
		Path:        "/black-screen",
		Title:       "Black Screen - Fullscreen Black Display",
		Description: "A plain fullscreen black screen for checking backlight bleed, glow and bright stuck pixels.",
		Keywords:    []string{"black screen", "blank screen", "backlight bleed"},
		Template:    "tool",
		ChangeFreq:  Monthly,
		Priority:    0.8,
		Nav: &NavEntry{
			Label:       "Black Screen",
			Icon:        "■",
			Description: "Fullscreen black",
			Category:    CategoryTool,
		},
		Tool: &Tool{Colors: []string{"#000000"}, Steps: primaryColorSteps},
	},
	{
		Path:        "/white-screen",
		Title:       "White Screen - Fullscreen White Display",
		Description: "A plain fullscreen white screen for spotting dead pixels, dust and uneven brightness.",
		Keywords:    []string{"white screen", "blank white page", "screen cleaning"},
		Template:    "tool",
		ChangeFreq:  Monthly,
		Priority:    0.8,
		Nav: &NavEntry{
			Label:       "White Screen",
			Icon:        "□",
			Description: "Fullscreen white",
			Category:    CategoryTool,
		},
		Tool: &Tool{Colors: []string{"#ffffff"}, Steps: primaryColorSteps},
	},
	{
		Path:        "/red-screen",
		Title:       "Red Screen - Fullscreen Red Display",
		Description: "Fullscreen red to isolate the red subpixels of a panel.",
		Keywords:    []string{"red screen", "subpixel test"},
		Template:    "tool",
		ChangeFreq:  Monthly,
		Priority:    0.7,
		Nav: &NavEntry{
			Label:       "Red Screen",
			Icon:        "●",
			Description: "Fullscreen red",
			Category:    CategoryTool,
		},
		Tool: &Tool{Colors: []string{"#ff0000"}, Steps: primaryColorSteps},
	},
	{
		Path:        "/green-screen",
		Title:       "Green Screen - Fullscreen Green Display",
		Description: "Fullscreen green to isolate the green subpixels of a panel.",
		Keywords:    []string{"green screen", "subpixel test"},
		Template:    "tool",
		ChangeFreq:  Monthly,
		Priority:    0.7,
		Nav: &NavEntry{
			Label:       "Green Screen",
			Icon:        "●",
			Description: "Fullscreen green",
			Category:    CategoryTool,
		},
		Tool: &Tool{Colors: []string{"#00ff00"}, Steps: primaryColorSteps},
	},
	{
		Path:        "/blue-screen",
		Title:       "Blue Screen - Fullscreen Blue Display",
		Description: "Fullscreen blue to isolate the blue subpixels of a panel.",
		Keywords:    []string{"blue screen", "subpixel test"},
		Template:    "tool",
		ChangeFreq:  Monthly,
		Priority:    0.7,
		Nav: &NavEntry{
			Label:       "Blue Screen",
			Icon:        "●",
			Description: "Fullscreen blue",
			Category:    CategoryTool,
		},
		Tool: &Tool{Colors: []string{"#0000ff"}, Steps: primaryColorSteps},
	},
	{
		Path:        "/backlight-bleed-test",
		Title:       "Backlight Bleed Test - Check IPS Glow and Light Leaks",
		Description: "Check an LCD panel for backlight bleed and IPS glow in a dark room.",
		Keywords:    []string{"backlight bleed test", "ips glow", "light bleed"},
		Template:    "tool",
		ChangeFreq:  Monthly,
		Priority:    0.8,
		Nav: &NavEntry{
			Label:       "Backlight Bleed Test",
			Icon:        "◐",
			Description: "Spot light leaking at the edges",
			Category:    CategoryTool,
		},
		Tool: &Tool{
			Colors: []string{"#000000", "#0a0a0a"},
			Steps: []string{
				"Turn off the room lights and set brightness to your usual level.",
				"Enter fullscreen and wait a few seconds for your eyes to adjust.",
				"Bright patches along the edges or corners are backlight bleed.",
			},
		},
	},
	{
		Path:        "/color-gradient-test",
		Title:       "Color Gradient Test - Check Color Banding",
		Description: "Smooth gradients that show color banding and poor bit depth at a glance.",
		Keywords:    []string{"gradient test", "color banding", "bit depth"},
		Template:    "tool",
		ChangeFreq:  Monthly,
		Priority:    0.7,
		Nav: &NavEntry{
			Label:       "Color Gradient Test",
			Icon:        "▤",
			Description: "Look for banding in gradients",
			Category:    CategoryTool,
		},
		Tool: &Tool{
			Colors: []string{"linear-gradient(90deg,#000,#fff)", "linear-gradient(90deg,#000,#f00)", "linear-gradient(90deg,#000,#0f0)", "linear-gradient(90deg,#000,#00f)"},
			Steps: []string{
				"Enter fullscreen and click to move between gradients.",
				"A good panel shows a smooth ramp with no visible steps.",
			},
		},
	},
	{
		Path:        "/response-time-test",
		Title:       "Response Time Test - Check Motion Blur and Ghosting",
		Description: "A moving target that makes ghosting and overshoot visible.",
		Keywords:    []string{"response time test", "ghosting test", "motion blur"},
		Template:    "tool",
		ChangeFreq:  Monthly,
		Priority:    0.7,
		Nav: &NavEntry{
			Label:       "Response Time Test",
			Icon:        "»",
			Description: "Check ghosting and motion blur",
			Category:    CategoryTool,
		},
		Tool: &Tool{
			Colors: []string{"#808080"},
			Steps: []string{
				"Follow the moving block with your eyes.",
				"Trails behind the block are ghosting, bright halos are overshoot.",
			},
		},
	},
	{
		Path:        "/uniformity-test",
		Title:       "Screen Uniformity Test - Check Brightness and Color Uniformity",
		Description: "Flat gray fields that expose clouding, vignetting and dirty screen effect.",
		Keywords:    []string{"uniformity test", "dirty screen effect", "clouding"},
		Template:    "tool",
		ChangeFreq:  Monthly,
		Priority:    0.7,
		Nav: &NavEntry{
			Label:       "Uniformity Test",
			Icon:        "▦",
			Description: "Find clouding and vignetting",
			Category:    CategoryTool,
		},
		Tool: &Tool{
			Colors: []string{"#202020", "#404040", "#808080", "#c0c0c0"},
			Steps: []string{
				"Enter fullscreen and click to step through the gray levels.",
				"Darker or tinted patches that stay in place are uniformity defects.",
			},
		},
	},
	{
		Path:        "/refresh-rate-test",
		Title:       "Refresh Rate Test - Check Your Monitor Hz",
		Description: "Measure the refresh rate your browser is actually rendering at.",
		Keywords:    []string{"refresh rate test", "hz test", "fps test"},
		Template:    "tool",
		ChangeFreq:  Monthly,
		Priority:    0.7,
		Nav: &NavEntry{
			Label:       "Refresh Rate Test",
			Icon:        "↻",
			Description: "Measure your display Hz",
			Category:    CategoryTool,
		},
		Tool: &Tool{
			Colors: []string{"#000000"},
			Steps: []string{
				"Keep the tab in the foreground for a few seconds.",
				"The counter settles on the refresh rate the browser is drawing at.",
			},
		},
	},
	{
		Path:        "/guides",
		Title:       "Display Guides - Buying, Testing and Fixing Screens",
		Description: "In depth guides on buying monitors and diagnosing dead pixels, backlight bleed and burn-in.",
		Keywords:    []string{"monitor buying guide", "dead pixel guide", "display guides"},
		Template:    "guides",
		ChangeFreq:  Weekly,
		Priority:    0.8,
		Nav: &NavEntry{
			Label:       "Guides",
			Icon:        "✎",
			Description: "Buying and troubleshooting guides",
			Category:    CategoryGuide,
		},
	},
	{
		Path:        "/about",
		Title:       "About Display Test",
		Description: "Who builds Display Test and why the tools are free.",
		Keywords:    []string{"about display test"},
		Template:    "about",
		ChangeFreq:  Monthly,
		Priority:    0.5,
		Nav: &NavEntry{
			Label:       "About",
			Icon:        "ℹ",
			Description: "About the project",
			Category:    CategoryCompany,
		},
	},
	{
		Path:        "/contact",
		Title:       "Contact Display Test",
		Description: "Report a bug, suggest a test or get in touch.",
		Keywords:    []string{"contact display test"},
		Template:    "contact",
		ChangeFreq:  Monthly,
		Priority:    0.5,
		Nav: &NavEntry{
			Label:       "Contact",
			Icon:        "✉",
			Description: "Get in touch",
			Category:    CategoryCompany,
		},
	},
	{
		Path:        "/privacy",
		Title:       "Privacy Policy - Display Test",
		Description: "How Display Test handles data. Tests run entirely in your browser.",
		Template:    "privacy",
		ChangeFreq:  Yearly,
		Priority:    0.3,
		Nav: &NavEntry{
			Label:       "Privacy Policy",
			Icon:        "§",
			Description: "Privacy policy",
			Category:    CategoryLegal,
		},
	},
	{
		Path:        "/terms",
		Title:       "Terms of Service - Display Test",
		Description: "The terms that apply when using Display Test.",
		Template:    "terms",
		ChangeFreq:  Yearly,
		Priority:    0.3,
		Nav: &NavEntry{
			Label:       "Terms of Service",
			Icon:        "§",
			Description: "Terms of service",
			Category:    CategoryLegal,
		},
	},
}

var guides = []Guide{
	{
		Slug:     "display-buying-guide",
		Title:    "Complete Display Buying Guide 2025",
		Summary:  "Panel types, resolution, refresh rate and what to test before the return window closes.",
		Category: "Buying",
		ReadTime: "12 min read",
		Icon:     "★",
	},
	{
		Slug:     "dead-pixels",
		Title:    "Dead Pixels: Complete Guide",
		Summary:  "What dead, stuck and hot pixels are, how to find them and which ones can be fixed.",
		Category: "Troubleshooting",
		ReadTime: "8 min read",
		Icon:     "◉",
	},
	{
		Slug:     "backlight-bleed",
		Title:    "Backlight Bleed and IPS Glow Explained",
		Summary:  "Tell normal IPS glow apart from real light leaks and decide when to ask for a replacement.",
		Category: "Troubleshooting",
		ReadTime: "7 min read",
		Icon:     "◐",
	},
	{
		Slug:     "monitor-calibration",
		Title:    "Monitor Calibration Basics",
		Summary:  "Brightness, contrast, gamma and white point settings you can fix without a colorimeter.",
		Category: "Setup",
		ReadTime: "10 min read",
		Icon:     "◎",
	},
	{
		Slug:     "refresh-rate-response-time",
		Title:    "Refresh Rate and Response Time",
		Summary:  "Why 144 Hz does not guarantee sharp motion, and what response time numbers really mean.",
		Category: "Performance",
		ReadTime: "9 min read",
		Icon:     "»",
	},
	{
		Slug:     "screen-burn-in",
		Title:    "Screen Burn-In: Prevention and Repair",
		Summary:  "How OLED burn-in and LCD image retention happen and how to keep them from becoming permanent.",
		Category: "Care",
		ReadTime: "8 min read",
		Icon:     "◍",
	},
}
