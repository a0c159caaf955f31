package geo

// Source vertex tables for the ANP geometries, in UTM zone 13N
// (EPSG:32613) easting/northing meters. The maritime boundary ring is the
// only geometry used for classification; the rest is map decoration.

type utmVertex struct {
	Easting  float64
	Northing float64
}

// maritimeBoundaryUTM is the closed ANP maritime boundary ring (first and
// last vertex identical).
var maritimeBoundaryUTM = []utmVertex{
	{327983.720703, 2441179.856690}, {406635.043518, 2359341.216920},
	{368280.494690, 2319018.426330}, {287871.587708, 2401061.958310},
	{327983.720703, 2441179.856690},
}

// islaMariaMadreUTM traces the Isla María Madre coastline.
var islaMariaMadreUTM = []utmVertex{
	{340647.669678, 2396167.727910}, {340579.711304, 2396063.339720},
	{340611.461304, 2395997.193730}, {340587.648682, 2395913.849670},
	{340595.586304, 2395900.620480}, {340645.857117, 2395890.037290},
	{340611.461304, 2395736.578670}, {340628.659302, 2395618.838680},
	{340570.450684, 2395366.161070}, {340525.471497, 2395249.744320},
	{340471.231689, 2395225.931700}, {340487.543884, 2395182.234130},
	{340368.570129, 2395208.520080}, {340324.400085, 2395007.740110},
	{340479.769714, 2394974.235470}, {340393.179688, 2394903.139530},
	{340373.335876, 2394827.733090}, {340450.065125, 2394766.878720},
	{340397.148315, 2394584.315920}, {340256.918884, 2394516.846920},
	{340233.106323, 2394463.930300}, {340152.408325, 2394445.409300},
	{340148.439514, 2394399.107120}, {340182.835510, 2394362.065490},
	{340312.481506, 2394327.669490}, {340373.335876, 2394281.367310},
	{340362.752502, 2394200.669310}, {340446.096313, 2394192.731690},
	{340432.867126, 2394129.231690}, {340327.033691, 2393958.575070},
	{340280.731506, 2393929.470890}, {340268.825073, 2393908.304080},
	{340129.918701, 2393850.095700}, {340141.824890, 2393802.470520},
	{340083.937500, 2393740.018130}, {339996.430115, 2393660.810120},
	{339967.940125, 2393661.430110}, {339604.670105, 2393789.380130},
	{339527.150085, 2393658.210080}, {339518.860107, 2393626.080080},
	{339516.220093, 2393591.930110}, {339584.590088, 2393563.660100},
	{339650.840088, 2393463.400090}, {339887.670105, 2393439.740110},
	{340161.430115, 2393477.410100}, {340297.929321, 2393484.969910},
	{340489.607100, 2393022.572000}, {340412.379000, 2392975.619700},
	{340361.409100, 2392954.032300}, {340321.785500, 2392931.381300},
	{340295.962100, 2392918.257900}, {340290.458700, 2392910.214500},
	{340269.927000, 2392865.976100}, {340255.322000, 2392819.409400},
	{340243.892000, 2392791.892600}, {340230.980300, 2392769.244300},
	{340215.105300, 2392759.719200}, {340187.800200, 2392760.777600},
	{340168.593600, 2392758.504800}, {340127.318500, 2392710.879700},
	{340112.203000, 2392694.661800}, {340098.476700, 2392672.512400},
	{340074.983900, 2392646.056700}, {340039.476900, 2392595.735600},
	{340036.037100, 2392587.001500}, {340042.598800, 2392550.806500},
	{340065.458800, 2392523.713100}, {340072.867200, 2392501.064700},
	{340077.698000, 2392477.208100}, {340080.063900, 2392465.716300},
	{340076.677200, 2392463.388000}, {340055.933800, 2392472.489700},
	{340049.372100, 2392473.336300}, {340037.307100, 2392463.599600},
	{340057.819400, 2392442.841800}, {340062.006000, 2392433.844500},
	{340061.159400, 2392424.107800}, {340061.177000, 2392414.711600},
	{340047.829000, 2392415.398000}, {340032.986600, 2392421.967400},
	{340029.475400, 2392418.726200}, {340031.380400, 2392404.121200},
	{340038.365500, 2392383.589500}, {340007.825700, 2392369.514200},
	{340002.805400, 2392359.882800}, {340003.440400, 2392353.321100},
	{340018.680400, 2392324.322700}, {340029.119900, 2392301.251200},
	{340036.102300, 2392288.919400}, {340046.766000, 2392275.041300},
	{340037.942100, 2392262.092600}, {340036.989600, 2392259.870100},
	{340040.799600, 2392257.647600}, {340063.310200, 2392241.197300},
	{340060.715200, 2392232.911600}, {340028.624400, 2392200.293200},
	{340015.895800, 2392181.650300}, {339983.620400, 2392158.470700},
	{339965.552000, 2392150.173600}, {339954.756900, 2392150.491100},
	{339942.374400, 2392157.476100}, {339938.405700, 2392156.682400},
	{339936.818200, 2392137.632300}, {339919.831900, 2392104.771000},
	{339939.020600, 2392084.476200}, {339937.134600, 2392080.204300},
	{339911.418100, 2392080.799700}, {339912.211900, 2392075.402200},
	{339925.388100, 2392064.607200}, {339940.568600, 2392056.879300},
	{339941.277200, 2392048.862500}, {339909.033400, 2392023.385200},
	{339908.651200, 2392005.784300}, {339922.730700, 2391995.347100},
	{339944.120700, 2391991.740800}, {339965.710700, 2391962.848200},
	{339996.368800, 2391935.821500}, {340012.285400, 2391933.116600},
	{340015.928400, 2391935.073400}, {340036.299500, 2391932.656400},
	{340036.593700, 2391910.177000}, {340038.724700, 2391895.429900},
	{340044.230000, 2391884.233600}, {340067.388800, 2391852.406400},
	{340078.899700, 2391843.468000}, {340079.534700, 2391831.244200},
	{340072.769000, 2391832.081600}, {340056.039700, 2391848.865500},
	{340034.535600, 2391848.404200}, {340020.955800, 2391857.279300},
	{339987.300800, 2391874.900500}, {339979.065600, 2391870.153000},
	{339987.955600, 2391845.705500}, {339999.610500, 2391840.840700},
	{339990.879300, 2391836.342700}, {340004.227500, 2391814.308200},
	{340023.198200, 2391823.797900}, {340009.929300, 2391845.074000},
	{340007.010100, 2391843.477700}, {339992.698300, 2391852.199200},
	{339993.015800, 2391857.279300}, {340016.543900, 2391847.345900},
	{340033.900600, 2391843.747600}, {340047.024000, 2391843.959200},
	{340057.131600, 2391841.214800}, {340066.896700, 2391823.734500},
	{340075.493200, 2391821.945800}, {340085.018200, 2391825.650000},
	{340089.102700, 2391828.828400}, {340087.491400, 2391843.791800},
	{340084.344500, 2391845.818100}, {340072.472200, 2391853.463100},
	{340061.777700, 2391871.174100}, {340053.269200, 2391890.081400},
	{340041.236600, 2391908.580700}, {340042.825000, 2391925.748300},
	{340041.017300, 2391938.588400}, {340035.482100, 2391941.921100},
	{340029.687100, 2391943.956900}, {340027.147100, 2391939.988200},
	{339995.147900, 2391941.743200}, {339983.332000, 2391953.481900},
	{339968.885700, 2391965.229500}, {339949.412100, 2391992.424300},
	{339943.803200, 2391996.027000}, {339925.229400, 2391998.884500},
	{339912.211900, 2392005.869600}, {339912.826100, 2392019.582900},
	{339943.485700, 2392040.953400}, {339946.025700, 2392057.622200},
	{339944.279400, 2392060.638400}, {339926.499400, 2392067.940900},
	{339919.196900, 2392074.132200}, {339930.150700, 2392074.132200},
	{339938.246900, 2392077.783400}, {339943.803200, 2392078.418400},
	{339945.708200, 2392084.609700}, {339933.711500, 2392095.572300},
	{339925.388100, 2392107.311000}, {339938.324900, 2392126.729100},
	{339939.389800, 2392129.708000}, {339942.691900, 2392151.284800},
	{339960.630700, 2392144.299800}, {339985.810800, 2392154.601400},
	{340018.796800, 2392178.369800}, {340039.329100, 2392206.108200},
	{340055.922600, 2392219.451200}, {340069.641900, 2392235.258700},
	{340068.263400, 2392242.883800}, {340065.312800, 2392247.591800},
	{340043.339600, 2392260.187600}, {340052.809200, 2392270.746200},
	{340052.547100, 2392275.745100}, {340038.234200, 2392299.114700},
	{340021.643800, 2392326.439400}, {340006.455700, 2392356.684200},
	{340013.690700, 2392363.109200}, {340022.854200, 2392371.247000},
	{340043.183000, 2392375.030800}, {340044.924900, 2392383.375200},
	{340036.672100, 2392404.544500}, {340035.402100, 2392415.551200},
	{340047.890500, 2392410.259500}, {340063.553800, 2392412.164500},
	{340066.305500, 2392431.637900}, {340065.791800, 2392439.425500},
	{340042.598800, 2392463.388000}, {340052.970500, 2392469.103000},
	{340073.076600, 2392460.422000}, {340080.910500, 2392458.943000},
	{340085.910400, 2392465.840500}, {340078.111300, 2392504.006200},
	{340069.903800, 2392526.464800}, {340047.467100, 2392553.346500},
	{340042.138000, 2392575.950800}, {340041.185500, 2392588.015800},
	{340041.961600, 2392592.078900}, {340064.797200, 2392622.610600},
	{340077.698000, 2392642.625900}, {340095.725000, 2392659.389000},
	{340115.006300, 2392686.786200}, {340129.964400, 2392707.175500},
	{340164.375700, 2392746.607400}, {340171.995700, 2392751.369900},
	{340180.830600, 2392754.932900}, {340216.586900, 2392753.369200},
	{340233.943600, 2392764.375900}, {340249.395300, 2392789.987600},
	{340259.784700, 2392818.362500}, {340275.342200, 2392865.828800},
	{340296.456000, 2392909.485200}, {340323.705900, 2392923.935900},
	{340362.813600, 2392949.014000}, {340418.058700, 2392971.397800},
	{340445.046300, 2392986.637800}, {340487.116700, 2393014.422800},
	{340491.723900, 2393017.465600}, {340554.575684, 2392865.843690},
	{340735.815674, 2392689.895510}, {340799.315918, 2392570.832700},
	{340914.409729, 2392618.457700}, {340956.743286, 2392580.093080},
	{341315.254272, 2392087.967100}, {341263.660522, 2392045.633730},
	{341321.868896, 2391935.831480}, {341380.077271, 2392013.883730},
	{341389.337891, 2392037.696290}, {341409.181702, 2392068.123290},
	{341415.997925, 2392074.462520}, {341423.062317, 2392059.846680},
	{341452.431091, 2392036.431090}, {341517.121887, 2392039.209110},
	{341533.790710, 2392066.196720}, {341543.315674, 2392033.652890},
	{341538.156311, 2391976.502690}, {341546.093689, 2391966.183900},
	{341556.015686, 2391974.121520}, {341568.715698, 2392018.571470},
	{341602.450073, 2392075.324890}, {341612.220276, 2392084.024110},
	{341634.077881, 2392050.925480}, {341727.563110, 2392140.209110},
	{343552.698730, 2389885.991700}, {343507.912109, 2389799.561280},
	{343518.495483, 2389691.081910}, {343379.588928, 2389615.675480},
	{343288.307495, 2389620.967100}, {343190.411499, 2389757.227720},
	{343072.671509, 2389714.894290}, {343126.911316, 2389597.154480},
	{342863.650330, 2389430.466670}, {342888.785889, 2389097.091130},
	{342875.556702, 2389093.122310}, {342862.327271, 2388978.028320},
	{342916.567078, 2388898.653080}, {342921.858704, 2388836.475890},
	{343022.400696, 2388661.850520}, {343048.859131, 2388582.475520},
	{343100.876892, 2388586.024900}, {343201.853088, 2388431.768920},
	{340521.691101, 2384841.964480}, {341115.563904, 2386033.625120},
	{339699.978699, 2386665.757080}, {339141.029114, 2385565.767700},
	{339139.558472, 2385562.847720}, {333486.840088, 2388086.395690},
	{333487.039673, 2388086.762510}, {333846.045471, 2388718.355900},
	{333589.775696, 2388845.270320}, {333089.439514, 2388318.086910},
	{333088.560913, 2388317.270080}, {331178.738525, 2391778.943910},
	{331506.668701, 2391960.168090}, {331401.720276, 2392177.387330},
	{331079.552490, 2392206.675110}, {330913.667908, 2392089.244320},
	{340647.669678, 2396167.727910},
}

// puertoBalletoUTM traces the Puerto Balleto shoreline on Isla María Madre.
var puertoBalletoUTM = []utmVertex{
	{340647.669623, 2396167.727920}, {340871.403535, 2393096.078400},
	{340981.527284, 2393138.588180}, {340974.280217, 2393158.040830},
	{340982.290133, 2393161.473650}, {340989.537199, 2393142.402420},
	{341020.051165, 2393153.463730}, {341042.173790, 2393168.720720},
	{341044.080913, 2393179.019180}, {341005.938456, 2393236.232860},
	{341015.855495, 2393240.809960}, {341066.966387, 2393165.669320},
	{341057.812197, 2393158.803680}, {341046.369460, 2393161.855070},
	{341025.009684, 2393146.598090}, {340992.588596, 2393134.392510},
	{340999.835663, 2393115.321280}, {340992.970021, 2393113.795580},
	{340984.197256, 2393132.485380}, {340873.875105, 2393088.869650},
	{341727.563090, 2392140.209000}, {341634.077853, 2392050.925350},
	{341612.220175, 2392084.024120}, {341602.450143, 2392075.324770},
	{341568.715700, 2392018.571530}, {341556.015675, 2391974.121450},
	{341546.093780, 2391966.183930}, {341538.156264, 2391976.502700},
	{341543.315650, 2392033.652810}, {341533.790631, 2392066.196630},
	{341517.121847, 2392039.209080}, {341452.431093, 2392036.430940},
	{341423.062284, 2392059.846620}, {341415.997933, 2392074.462520},
	{341409.181570, 2392068.123300}, {341389.337780, 2392037.696150},
	{341380.077345, 2392013.883610}, {341321.868895, 2391935.831370},
	{341263.660445, 2392045.633670}, {341315.254298, 2392087.967090},
	{340956.743165, 2392580.093070}, {340914.409747, 2392618.457730},
	{340799.315766, 2392570.832640}, {340735.815639, 2392689.895380},
	{340554.575694, 2392865.843640}, {340297.929347, 2393484.969880},
	{340161.430002, 2393477.410000}, {339887.670000, 2393439.740000},
	{339650.840002, 2393463.400000}, {339584.590002, 2393563.660000},
	{339516.219999, 2393591.930000}, {339518.860003, 2393626.080000},
	{339527.150000, 2393658.210000}, {339604.670000, 2393789.380000},
	{339967.940001, 2393661.430000}, {339996.430002, 2393660.810000},
	{340033.490000, 2393757.320000}, {340083.937515, 2393740.018110},
	{340141.824868, 2393802.470520}, {340129.918594, 2393850.095610},
	{340268.825122, 2393908.304060}, {340280.731396, 2393929.470770},
	{340327.033572, 2393958.575000}, {340432.867117, 2394129.231590},
	{340446.096310, 2394192.731710}, {340362.752393, 2394200.669230},
	{340373.335748, 2394281.367310}, {340312.481459, 2394327.669480},
	{340182.835367, 2394362.065390}, {340148.439465, 2394399.107130},
	{340152.408223, 2394445.409300}, {340233.106301, 2394463.930170},
	{340256.918848, 2394516.846950}, {340397.148295, 2394584.315830},
	{340450.065068, 2394766.878700}, {340373.335748, 2394827.732980},
	{340393.179538, 2394903.139390}, {340479.769674, 2394974.235460},
	{340324.400000, 2395007.740000}, {340368.570002, 2395208.520000},
	{340487.543742, 2395182.234030}, {340471.231777, 2395225.931700},
	{340525.471469, 2395249.744250}, {340570.450725, 2395366.161140},
	{340628.659175, 2395618.838730}, {340611.461224, 2395736.578550},
	{340645.857126, 2395890.037190}, {340595.586192, 2395900.620550},
	{340587.648676, 2395913.849740}, {340611.461224, 2395997.193730},
	{340579.711161, 2396063.339620}, {340647.669623, 2396167.727920},
}

// minorIslandsUTM holds the small decorative island traces keyed by display name.
var minorIslandsUTM = []struct {
	Name     string
	Marker   string
	Color    string
	Vertices []utmVertex
}{
	{
		Name:   "Isla San Juanito (V)",
		Marker: "o",
		Color:  "darkviolet",
		Vertices: []utmVertex{
			{328030.906100, 2404586.986800}, {327633.883600, 2404310.100800},
		},
	},
	{
		Name:   "Islote El Morro (V)",
		Marker: "s",
		Color:  "firebrick",
		Vertices: []utmVertex{
			{323879.578800, 2405116.471600}, {323867.899400, 2405109.464000},
		},
	},
	{
		Name:   "Isla María Magdalena (V)",
		Marker: "^",
		Color:  "olive",
		Vertices: []utmVertex{
			{350862.351900, 2377854.999000}, {351247.036700, 2377788.188800},
		},
	},
	{
		Name:   "Isla María Cleofas (V)",
		Marker: "P",
		Color:  "teal",
		Vertices: []utmVertex{
			{369429.510100, 2359596.764100}, {369848.633600, 2359593.460300},
			{369866.088000, 2359593.322700}, {369908.061600, 2359592.991800},
			{372259.125600, 2359574.458900}, {372486.810100, 2359572.664100},
		},
	},
	{
		Name:   "Islote La Mona 1 (V)",
		Marker: "*",
		Color:  "darkorange",
		Vertices: []utmVertex{
			{366477.352800, 2358421.914700}, {366325.153200, 2358358.393600},
		},
	},
	{
		Name:   "Islote La Mona 2 (V)",
		Marker: "X",
		Color:  "darkmagenta",
		Vertices: []utmVertex{
			{367454.190600, 2356053.133500}, {367435.503600, 2356048.461700},
		},
	},
	{
		Name:   "Islote La Mona 3 (V)",
		Marker: "D",
		Color:  "navy",
		Vertices: []utmVertex{
			{368306.785600, 2355808.450400}, {368277.587200, 2355808.450400},
		},
	},
}
