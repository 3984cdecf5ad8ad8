package catalog

// defaultTree is the site's own browsing hierarchy. Slugs are the
// canonical path segments used by every other package.
var defaultTree = []Node{
	n("Body Kit Ürünleri", "body-kit-urunleri",
		n("Body Kit Setler", "body-kit-setler"),
		n("Panjur & Böbrek", "panjur-bobrek"),
		n("Ön Tampon", "on-tampon"),
		n("Ön Tampon Diğer Ürünler", "on-tampon-diger-urunler"),
		n("Ön Lip ve Flap", "on-lip-ve-flap"),
		n("Ön Tampon Ekleri", "on-tampon-ekleri"),
		n("Çamurluk ve Çamurluk Ürünleri", "camurluk-ve-camurluk-urunleri",
			n("Çamurluk Kabartma", "camurluk-kabartma"),
			n("Çamurluk Seti", "camurluk-seti"),
			n("Çamurluk Sinyali", "camurluk-sinyali"),
			n("Çamurluk Venti", "camurluk-venti"),
		),
		n("Kaput ve Kaput Aksesuarları", "kaput-ve-kaput-aksesuarlari",
			n("Kaput", "kaput"),
			n("Kaput Amortisörü", "kaput-amortisor"),
			n("Kaput İzolasyon", "kaput-izolasyon"),
			n("Kaput Kaplama ve Havalandırma", "kaput-kaplama-ve-havalandirma"),
		),
		n("Arka Tampon Diğer Ürünler", "arka-tampon-diger-urunler"),
		n("Dönüşüm Kiti", "donusum-kiti"),
		n("Arka Tampon Ekleri", "arka-tampon-ekleri"),
		n("Difüzör", "difuzor"),
		n("Spoiler", "spoiler"),
		n("Bıçaklar", "bicaklar"),
		n("Universal Difüzör", "universal-difuzor"),
		n("Fiber Ürünler", "fiber-urunler"),
		n("Hayalet Ekran", "hayalet-ekran"),
		n("Panjur Aksesuarları", "panjur-aksesuarlari"),
	),
	n("Dış Aksesuarlar", "dis-aksesuarlar",
		n("Antenler", "antenler"),
		n("Arka Basamak", "arka-basamak"),
		n("Ayna ve Cam Ürünleri", "ayna-ve-cam-urunleri",
			n("Cam Rüzgarlığı", "cam-ruzgarligi"),
			n("Diğer Cam Rüzgarlıkları", "diger-cam-ruzgarliklari"),
			n("Ön Cam Güneşliği", "on-cam-gunesligi"),
			n("Ayna Rüzgarlığı", "ayna-ruzgarligi"),
		),
		n("Bagaj Ürünleri", "bagaj-urunleri",
			n("Bagaj Çıtası", "bagaj-citasi"),
			n("Bagaj Eşik Koruma", "bagaj-esik-koruma"),
			n("Bagaj Kaplama", "bagaj-kaplama"),
			n("Diğer Bagaj Ürünleri", "diger-bagaj-urunleri"),
		),
		n("Bantlar", "bantlar"),
		n("Batman Ayna Kapağı", "batman-ayna-kapagi"),
		n("Tuning Shop", "tuning-shop",
			n("Boru ve Boru Malzemeleri", "boru-ve-boru-malzemeleri"),
			n("Amortisör", "amortisor"),
		),
		n("Egzoz ve Egzoz Uçları", "egzoz-ve-egzoz-uclari",
			n("Egzoz Ucu", "egzoz-ucu"),
			n("Egzozlar", "egzozlar"),
		),
		n("Plaka Ürünleri", "plaka-urunleri",
			n("Plaka Kalemi", "plaka-kalemi"),
			n("Plakalık", "plakalik"),
		),
		n("Emniyet ve Güvenlik", "emniyet-ve-guvenlik",
			n("İlk Yardım ve Trafik Setleri", "ilk-yardim-ve-trafik-setleri"),
			n("Kilit Sistemi", "kilit-sistemi"),
		),
		n("Oto Bidon", "oto-bidon"),
		n("Kriko", "kriko"),
		n("Far - Stop - Sis Ürünleri", "far-stop-sis-urunleri",
			n("Far Kaşı", "far-kasi"),
			n("Far ve Stop Çerçevesi", "far-ve-stop-cercevesi"),
			n("Far ve Stop Kaplama", "far-ve-stop-kaplama"),
			n("Sis Kaplama", "sis-kaplama"),
		),
		n("Paçalık", "pacalik"),
		n("Panjur Çıta ve Kaplama", "panjur-cita-ve-kaplama"),
		n("Ara Atkı", "ara-atki"),
		n("ATV Brandası", "atv-brandasi"),
		n("Kaput Rüzgarlığı", "kaput-ruzgarligi"),
		n("Motosiklet Brandası", "motosiklet-brandasi"),
		n("Plastik Yan Kapı Çıtası", "plastik-yan-kapi-citasi"),
		n("Reflektör", "reflektor"),
		n("Tavan Çıtası", "tavan-citasi"),
		n("Universal Basamaklıklar", "universal-basamakliklar",
			n("Basamak Ayakları (Braket)", "basamak-ayaklari-braket"),
			n("Basamak Profilleri", "basamak-profilleri"),
		),
		n("Yağlama Temizlik ve Bakım Ürünleri", "yaglama-temizlik-ve-bakim-urunleri"),
	),
	n("İç Aksesuarlar", "ic-aksesuarlar",
		n("Oto Paspas ve Bagaj Ürünleri", "oto-paspas-ve-bagaj-urunleri",
			n("5D Havuzlu Araca Özel Paspas", "5d-havuzlu-araca-ozel-paspas"),
			n("Araca Özel Halı Paspas", "araca-ozel-hali-paspas"),
			n("3D Araç Özel Bagaj Havuzu", "3d-arac-ozel-bagaj-havuzu"),
			n("3D Havuzlu Araca Özel Paspas", "3d-havuzlu-araca-ozel-paspas"),
		),
		n("Oto Koltuk ve Branda", "oto-koltuk-ve-branda",
			n("Koltuk Minderi", "koltuk-minderi"),
			n("Boyun Yastıkları", "boyun-yastiklari"),
			n("Oto Branda", "oto-branda"),
			n("Emniyet Kemer Kılıfı", "emniyet-kemer-kilifi"),
		),
		n("Tavan ve Konsol Aksesuarları", "tavan-ve-konsol-aksesuarlari",
			n("Tavan Konsol İç Kaplama", "tavan-konsol-ic-kaplama"),
			n("4x4 Tavan Aksesuarları", "4x4-tavan-aksesuarlari"),
			n("Konsol Aksesuarları", "konsol-aksesuarlari"),
			n("Kapı Açma Aksesuarları", "kapi-acma-aksesuarlari"),
		),
		n("Direksiyon Ürünleri", "direksiyon-urunleri"),
		n("Araç İçi ve Torpido Aksesuarları", "arac-ici-ve-torpido-aksesuarlari",
			n("Kaydırmaz Pedler", "kaydirmaz-pedler"),
			n("Vantilatör", "vantilator"),
			n("Araç Saatleri", "arac-saatleri"),
			n("Burmester Tavan", "burmester-tavan"),
			n("4x4 Geri Görüş Kamerası", "4x4-geri-gorus-kamerasi"),
		),
		n("Vites Ürünleri", "vites-urunleri",
			n("Vites Kenar Kaplama", "vites-kenar-kaplama"),
			n("Vites Konsol Kaplama", "vites-konsol-kaplama"),
			n("Vites Topuzu Kaplama", "vites-topuzu-kaplama"),
		),
	),
	n("Elektronik ve Aydınlatma", "elektronik-ve-aydinlatma",
		n("Led Aydınlatma", "led-aydinlatma",
			n("Angel Ledler", "angel-ledler"),
			n("Gündüz Ledleri", "gunduz-ledleri"),
			n("Ayna Altı Ledler", "ayna-alti-ledler"),
			n("Çakar Lamba", "cakar-lamba"),
		),
		n("Far ve Diğer Ampuller", "far-ve-diger-ampuller",
			n("Halojen Far Ampulü", "halojen-far-ampulu"),
			n("Led Xenonlar", "led-xenonlar"),
			n("Led Ampüller", "led-ampuller"),
			n("Xenon Kitleri", "xenon-kitleri"),
		),
		n("RGB Far Aydınlatma", "rgb-far-aydinlatma"),
		n("Arka Far Stop", "arka-far-stop"),
		n("Sis Farları", "sis-farlari"),
		n("Ön Farlar", "on-farlar"),
		n("Tavan İç Aydınlatma", "tavan-ic-aydinlatma"),
		n("Stop Lambası", "stop-lambasi"),
	),
	n("Krom Aksesuarlar", "krom-aksesuarlar",
		n("Yan Kapı Çıtaları", "yan-kapi-citalari"),
		n("Cam Çerçevesi", "cam-cercevesi"),
		n("Arka Tampon Aksesuarı", "arka-tampon-aksesuari"),
		n("Arka Tampon Koruma", "arka-tampon-koruma"),
		n("Ayna Alt Çıta Kaplama", "ayna-alti-cita-kaplama"),
		n("Ayna Kapağı", "ayna-kapagi"),
		n("Bagaj Açma Kaplama", "bagaj-acma-kaplama"),
		n("Bagaj Çıtası Kaplama", "bagaj-citasi-kaplama"),
		n("Cam Çıtası Kaplama", "cam-citasi-kaplama"),
		n("Depo Kapağı Kaplama", "depo-kapagi-kaplama"),
		n("Far Çerçevesi", "far-cercevesi"),
		n("Kapı İç Eşiği", "kapi-ic-esigi"),
		n("Kapı Kolu Kaplama", "kapi-kolu-kaplama"),
		n("Kaput Çıtası", "kaput-citasi"),
		n("Krom Aksesuar Seti", "krom-aksesuar-seti"),
		n("Krom Ayna Kapakları", "krom-ayna-kapaklari"),
		n("Krom Egzoz Kaplama", "krom-egzoz-kaplama"),
		n("Ön Panjur Kaplama", "on-panjur-kaplama"),
		n("Ön Tampon Çıtası", "on-tampon-citasi"),
		n("Sis Farı Çerçeveleri", "sis-fari-cerceveleri"),
		n("Sis Farı Kapağı", "sis-fari-kapagi"),
		n("Stop Çerçeveleri", "stop-cerceveleri"),
		n("Sürgülü Kapı Çıtası", "surgulu-kapi-citasi"),
		n("Reflektör Çerçevesi", "reflektor-cercevesi"),
		n("Sinyal Çerçeveleri", "sinyal-cerceveleri"),
	),
	n("Yedek Parça", "yedek-parca",
		n("Ayna Camları", "ayna-camlari"),
		n("Yan Aynalar", "yan-aynalar"),
		n("Çamurluk Davlumbaz", "camurluk-davlumbaz"),
		n("Çeki Demiri ve Aksesuarları", "ceki-demiri-ve-aksesuarlari"),
		n("Far - Stop - Sis Ürünleri", "far-stop-sis-urunleri"),
		n("Kapı Kolu", "kapi-kolu"),
		n("Marşpiyel Kaplaması ve Aksesuarları", "marspiyel-kaplamasi-ve-aksesuarlari"),
		n("Ön Arka Tampon Braket - Bakalit", "on-arka-tampon-braket-bakalit"),
		n("Panjur & Izgara Aksesuarları", "panjur-izgara-aksesuarlari"),
		n("Stepne Kapağı", "stepne-kapagi"),
		n("Tampon Alt Muhafaza Ürünleri", "tampon-alt-muhafaza-urunleri"),
	),
	n("Pick Up - Off Road", "pick-up-off-road",
		n("Amortisör", "amortisor"),
		n("Ayna Seti", "ayna-seti"),
		n("Bagaj - Kabin - Kasa", "bagaj-kabin-kasa"),
		n("Cam Rüzgarlığı", "cam-ruzgarligi"),
		n("Ön Arka Koruma Difüzör", "on-arka-koruma-difuzor"),
		n("Araç İçi ve Torpido Aksesuarları", "arac-ici-ve-torpido-aksesuarlari"),
		n("Ayna ve Cam Ürünleri", "ayna-ve-cam-urunleri"),
		n("Batman Ayna Kapağı", "batman-ayna-kapagi"),
	),
	n("Müzik Sistemleri", "muzik-sistemleri",
		n("Amfi Çeşitleri", "amfi-cesitleri"),
		n("Araç İzolasyon", "arac-izolasyon"),
		n("Diğer Ürünler", "diger-urunler"),
		n("Hoparlör Takımları", "hoparlor-takimlari"),
		n("Mid Takımları", "mid-takimlari"),
		n("Multimedia ve Teyp", "multimedia-ve-teyp"),
		n("Subwoofer", "subwoofer"),
		n("Tak Çalıştır Soketler", "tak-calistir-soketler"),
		n("Tweeter", "tweeter"),
		n("Woofer", "woofer"),
	),
	n("Oto Aksesuar Ürünleri", "oto-aksesuar-urunleri"),
}

func n(title, slug string, children ...Node) Node {
	return Node{Title: title, Slug: slug, Children: children}
}
